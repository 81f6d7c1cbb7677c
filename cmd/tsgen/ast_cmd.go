package main

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/jmespath-community/go-jmespath"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risor-io/tsgen"
	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/internal/samples"
	"github.com/risor-io/tsgen/types"
)

func newASTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <name>",
		Short: "Display the node tree of a sample program",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return samples.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: astHandler,
	}
	cmd.Flags().StringP("output", "o", "json", "Output format: json or text")
	cmd.Flags().StringP("query", "q", "", "JMESPath expression applied to the JSON tree")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	viper.BindPFlag("query", cmd.Flags().Lookup("query"))
	return cmd
}

func astHandler(cmd *cobra.Command, args []string) error {
	sample, err := samples.Get(args[0])
	if err != nil {
		return err
	}
	program := &ast.Program{Stmts: tsgen.Build(sample.Program).Stmts}
	out := cmd.OutOrStdout()

	switch strings.ToLower(viper.GetString("output")) {
	case "", "json":
		var tree any = nodeToJSON(program)
		if query := viper.GetString("query"); query != "" {
			if tree, err = queryTree(tree, query); err != nil {
				return err
			}
		}
		data, err := getOutputJSON(tree)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "text":
		printAST(out, program)
	default:
		return fmt.Errorf("unknown output format: %s", viper.GetString("output"))
	}
	return nil
}

// queryTree evaluates a JMESPath expression against the generic JSON form
// of tree.
func queryTree(tree any, query string) (any, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	result, err := jmespath.Search(query, generic)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	return result, nil
}

// ASTNode represents a node in the JSON tree output.
type ASTNode struct {
	Type       string     `json:"type"`
	Value      any        `json:"value,omitempty"`
	Annotation string     `json:"annotation,omitempty"`
	Children   []*ASTNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *ASTNode {
	if node == nil {
		return nil
	}
	value, annotation := nodeDetails(node)
	result := &ASTNode{
		Type:       reflect.TypeOf(node).Elem().Name(),
		Value:      value,
		Annotation: annotation,
	}
	for _, child := range ast.Children(node) {
		result.Children = append(result.Children, nodeToJSON(child))
	}
	return result
}

// nodeDetails returns the scalar payload of a node and its type annotation.
func nodeDetails(node ast.Node) (any, string) {
	switch n := node.(type) {
	case *ast.Ident:
		return n.Name, typeString(n.Type)
	case *ast.Number:
		return n.Value, typeString(n.Type)
	case *ast.String:
		return n.Value, typeString(n.Type)
	case *ast.Bool:
		return n.Value, typeString(n.Type)
	case *ast.Value:
		return fmt.Sprintf("%v", n.V), ""
	case *ast.Raw:
		return n.Text, ""
	case *ast.Object:
		keys := make([]string, 0, len(n.Props))
		for _, p := range n.Props {
			keys = append(keys, p.Key)
		}
		return strings.Join(keys, ", "), typeString(n.Type)
	case *ast.Array:
		return nil, typeString(n.Type)
	case *ast.Func:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			if p.Type != nil {
				params = append(params, p.Name+": "+p.Type.String())
				continue
			}
			params = append(params, p.Name)
		}
		return strings.Join(params, ", "), typeString(n.Returns)
	case *ast.MethodCall:
		return n.Method, ""
	case *ast.Binary:
		return string(n.Op), ""
	case *ast.Logical:
		return string(n.Op), ""
	case *ast.Unary:
		return string(n.Op), ""
	case *ast.Let:
		return n.Keyword() + " " + n.Name, typeString(n.Type)
	case *ast.ForOf:
		return n.Name, ""
	case *ast.ForIn:
		return n.Name, ""
	case *ast.TypeAlias:
		return n.Name, typeString(n.Type)
	case *ast.Interface:
		return n.Name, ""
	}
	return nil, ""
}

func typeString(t types.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func printAST(w io.Writer, program *ast.Program) {
	fmt.Fprintln(w, cyan("Program"))
	for i, stmt := range program.Stmts {
		printNode(w, stmt, "  ", i == len(program.Stmts)-1)
	}
}

func printNode(w io.Writer, node ast.Node, indent string, isLast bool) {
	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}

	line := faint(indent+connector) + cyan(reflect.TypeOf(node).Elem().Name())
	value, annotation := nodeDetails(node)
	if value != nil {
		if s, ok := value.(string); ok {
			if s != "" {
				line += " " + yellow(fmt.Sprintf("%q", s))
			}
		} else {
			line += " " + yellow(fmt.Sprintf("%v", value))
		}
	}
	if annotation != "" {
		line += faint(": " + annotation)
	}
	fmt.Fprintln(w, line)

	children := ast.Children(node)
	for i, child := range children {
		printNode(w, child, childIndent, i == len(children)-1)
	}
}
