package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/interchange"
	"loom/internal/lexer"
	"loom/internal/parser"
	"loom/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.lm>",
	Short: "Parse a loom source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("emit-ast", false, "write a msgpack-encoded AST to stdout instead of a text dump")
}

func runParse(cmd *cobra.Command, args []string) error {
	emitAST, err := cmd.Flags().GetBool("emit-ast")
	if err != nil {
		return err
	}

	file, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	b := ast.NewBuilder()
	lx := lexer.New(file)
	prog, perr := parser.Parse(lx, b)
	if perr != nil {
		printParseError(cmd, perr)
		return perr
	}

	if emitAST {
		data, err := interchange.EncodeProgram(b, prog)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	printProgram(cmd.OutOrStdout(), b, prog)
	return nil
}

func printParseError(cmd *cobra.Command, err error) {
	pe, ok := err.(*diag.ParseError)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if useColor(cmd, os.Stderr) {
		errColor := color.New(color.FgRed, color.Bold)
		fmt.Fprintf(os.Stderr, "%s: %s\n", pe.Pos, errColor.Sprint(pe.Error()))
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", pe.Error())
}

func printProgram(out io.Writer, b *ast.Builder, prog *ast.Program) {
	for _, imp := range prog.Imports {
		fmt.Fprintf(out, "import %q (%d elems)\n", describeExpr(b, imp.Path), len(imp.Elems))
	}
	for _, decl := range prog.Decls {
		fmt.Fprintf(out, "let %s (%s)\n", decl.Name.Name, describeExpr(b, decl.Expr))
	}
}

func describeExpr(b *ast.Builder, id ast.ExprID) string {
	node := b.Exprs.Get(id)
	if node == nil {
		return "<invalid>"
	}
	switch node.Kind {
	case ast.ExprLit:
		lit, _ := b.Exprs.Lit(id)
		return fmt.Sprintf("lit %s", lit.Raw)
	case ast.ExprIdent:
		ident, _ := b.Exprs.Ident(id)
		return fmt.Sprintf("ident %s", ident.Name)
	case ast.ExprFunc:
		return "func"
	case ast.ExprCall:
		return "call"
	case ast.ExprBinary:
		return "binary"
	case ast.ExprUnary:
		return "unary"
	case ast.ExprTuple:
		return "tuple"
	case ast.ExprList:
		return "list"
	default:
		return "invalid"
	}
}
