package ast

import (
	"fmt"

	"github.com/jesperkha/holy/holy/token"
)

type Type interface {
	// Get string representation of type, identical to the type syntax.
	String() string

	Pos() token.Pos
	End() token.Pos
}

type (
	// num, str, bool, void or any
	PrimitiveType struct {
		T token.Token
	}

	// list<T>
	ListType struct {
		T     token.Token
		Elem  Type
		Close token.Token
	}

	// tuple<T>
	TupleType struct {
		T     token.Token
		Elem  Type
		Close token.Token
	}

	// dict<K, V>
	DictType struct {
		T     token.Token
		Key   Type
		Value Type
		Close token.Token
	}
)

func (p *PrimitiveType) String() string { return p.T.Lexeme }
func (p *PrimitiveType) Pos() token.Pos { return p.T.Pos }
func (p *PrimitiveType) End() token.Pos { return p.T.EndPos }

func (l *ListType) String() string { return fmt.Sprintf("list<%s>", l.Elem) }
func (l *ListType) Pos() token.Pos { return l.T.Pos }
func (l *ListType) End() token.Pos { return l.Close.EndPos }

func (t *TupleType) String() string { return fmt.Sprintf("tuple<%s>", t.Elem) }
func (t *TupleType) Pos() token.Pos { return t.T.Pos }
func (t *TupleType) End() token.Pos { return t.Close.EndPos }

func (d *DictType) String() string { return fmt.Sprintf("dict<%s, %s>", d.Key, d.Value) }
func (d *DictType) Pos() token.Pos { return d.T.Pos }
func (d *DictType) End() token.Pos { return d.Close.EndPos }
