// Package eval walks a built ast.Node tree post-order, resolving
// variables through a dataaccessor.DataAccessor (falling back to the
// Configuration's constants), applying operator and function bodies, and
// rounding decimal results to the Configuration's MathContext.
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/loncus/expressions/ast"
	"github.com/loncus/expressions/config"
	"github.com/loncus/expressions/dataaccessor"
	"github.com/loncus/expressions/function"
	"github.com/loncus/expressions/operator"
	"github.com/loncus/expressions/value"
)

// EvalError is raised when a built tree cannot be evaluated: an undefined
// variable, a type mismatch an operator or function body rejected, or a
// division/modulo by zero.
type EvalError struct {
	Column  int
	Lexeme  string
	Message string
}

func (e *EvalError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("evaluation error at column %d: %s", e.Column, e.Message)
	}
	return fmt.Sprintf("evaluation error at column %d: %s: %q", e.Column, e.Message, e.Lexeme)
}

// Evaluate walks tree and returns its value under cfg, resolving variables
// through accessor and cfg's default constants, in that order.
func Evaluate(tree *ast.Node, cfg *config.Configuration, accessor dataaccessor.DataAccessor) (value.Value, error) {
	v, err := evalNode(tree, cfg, accessor)
	if err != nil {
		return value.Value{}, err
	}
	return postProcess(v, cfg), nil
}

func postProcess(v value.Value, cfg *config.Configuration) value.Value {
	if v.Kind() != value.KindDecimal {
		return v
	}
	d := v.AsDecimal()
	if cfg.DecimalPlacesRounding() != config.DecimalPlacesUnlimited {
		d = d.Round(int32(cfg.DecimalPlacesRounding()))
	} else {
		d = cfg.MathContext().Round(d)
	}
	if cfg.StripTrailingZeros() {
		s := d.String()
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimRight(s, ".")
			if s == "" || s == "-" {
				s = "0"
			}
			if stripped, err := decimal.NewFromString(s); err == nil {
				d = stripped
			}
		}
	}
	return value.Decimal(d)
}

func evalNode(n *ast.Node, cfg *config.Configuration, accessor dataaccessor.DataAccessor) (value.Value, error) {
	switch n.Kind {
	case ast.NumberLiteral:
		return evalNumberLiteral(n)
	case ast.StringLiteral:
		return value.Str(n.Token.Value), nil
	case ast.VariableOrConstant:
		return evalVariable(n, cfg, accessor)
	case ast.ArrayLiteral:
		elems := make([]value.Value, len(n.Children))
		for i, c := range n.Children {
			v, err := evalNode(c, cfg, accessor)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = v
		}
		return value.Array(elems), nil
	case ast.PrefixOp, ast.PostfixOp:
		operand, err := evalNode(n.Children[0], cfg, accessor)
		if err != nil {
			return value.Value{}, err
		}
		def, ok := n.Token.Definition.(operator.Definition)
		if !ok {
			return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: n.Token.Value, Message: "operator missing its definition"}
		}
		result, err := def.Eval(operand)
		if err != nil {
			return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: n.Token.Value, Message: err.Error()}
		}
		return result, nil
	case ast.InfixOp:
		left, err := evalNode(n.Children[0], cfg, accessor)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalNode(n.Children[1], cfg, accessor)
		if err != nil {
			return value.Value{}, err
		}
		def, ok := n.Token.Definition.(operator.Definition)
		if !ok {
			return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: n.Token.Value, Message: "operator missing its definition"}
		}
		result, err := def.Eval(left, right)
		if err != nil {
			return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: n.Token.Value, Message: err.Error()}
		}
		return result, nil
	case ast.FunctionCall:
		args := make([]value.Value, len(n.Children))
		for i, c := range n.Children {
			v, err := evalNode(c, cfg, accessor)
			if err != nil {
				return value.Value{}, err
			}
			args[i] = v
		}
		def, ok := n.Token.Definition.(function.Definition)
		if !ok {
			return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: n.Token.Value, Message: "function missing its definition"}
		}
		result, err := def.Eval(args...)
		if err != nil {
			return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: n.Token.Value, Message: err.Error()}
		}
		return result, nil
	default:
		return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: n.Token.Value, Message: "unknown node kind"}
	}
}

func evalNumberLiteral(n *ast.Node) (value.Value, error) {
	lexeme := n.Token.Value
	if len(lexeme) > 2 && (lexeme[1] == 'x' || lexeme[1] == 'X') && lexeme[0] == '0' {
		i, err := strconv.ParseInt(lexeme[2:], 16, 64)
		if err != nil {
			return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: lexeme, Message: "malformed hexadecimal literal"}
		}
		return value.Decimal(decimal.NewFromInt(i)), nil
	}
	d, err := decimal.NewFromString(lexeme)
	if err != nil {
		return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: lexeme, Message: "malformed numeric literal"}
	}
	return value.Decimal(d), nil
}

func evalVariable(n *ast.Node, cfg *config.Configuration, accessor dataaccessor.DataAccessor) (value.Value, error) {
	name := n.Token.Value
	if accessor != nil {
		if v, ok := accessor.Get(name); ok {
			return v, nil
		}
	}
	if v, ok := cfg.DefaultConstants().Get(name); ok {
		return v, nil
	}
	return value.Value{}, &EvalError{Column: n.Token.StartColumn, Lexeme: name, Message: "undefined variable"}
}
