package ast

import (
	"testing"
)

func TestNodeKinds(t *testing.T) {
	span := Span{File: "test.monkey", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 2}

	tests := []struct {
		node Node
		kind string
	}{
		{&Ident{Span: span, Name: "x"}, "Ident"},
		{&IntLiteral{Span: span, Value: 5}, "IntLiteral"},
		{&BoolLiteral{Span: span, Value: true}, "BoolLiteral"},
		{&PrefixExpr{Span: span, Op: "-"}, "PrefixExpr"},
		{&InfixExpr{Span: span, Op: "+"}, "InfixExpr"},
		{&IfExpr{Span: span}, "IfExpr"},
		{&FnLiteral{Span: span}, "FnLiteral"},
		{&CallExpr{Span: span}, "CallExpr"},
		{&LetStmt{Span: span}, "LetStmt"},
		{&ReturnStmt{Span: span}, "ReturnStmt"},
		{&ExprStmt{Span: span}, "ExprStmt"},
		{&BlockStmt{Span: span}, "BlockStmt"},
		{&Program{Span: span}, "Program"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := tt.node.Kind(); got != tt.kind {
				t.Errorf("Kind(): got %q, want %q", got, tt.kind)
			}
			if got := tt.node.NodeSpan(); got != span {
				t.Errorf("NodeSpan(): got %+v, want %+v", got, span)
			}
		})
	}
}
