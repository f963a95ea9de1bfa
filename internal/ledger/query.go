package ledger

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Root is a top-level connection exposed by the ledger index
type Root string

const (
	RootNFTs              Root = "nftEntities"
	RootDistinctSerieNFTs Root = "distinctSerieNfts"
	RootTransfers         Root = "nftOperationEntities"
	RootSeries            Root = "serieEntities"
)

// Operator is a comparison understood by the ledger filter language
type Operator string

const (
	OpEqualTo              Operator = "equalTo"
	OpNotEqualTo           Operator = "notEqualTo"
	OpIn                   Operator = "in"
	OpNotIn                Operator = "notIn"
	OpIsNull               Operator = "isNull"
	OpGreaterThanOrEqualTo Operator = "greaterThanOrEqualTo"
	OpLessThanOrEqualTo    Operator = "lessThanOrEqualTo"
)

// ValueKind is the literal type of a clause value
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindList
)

// Value is a typed literal. Build it with the String, Int, Float, Bool, List or Time helpers.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	List  []string
}

func String(s string) Value     { return Value{Kind: KindString, Str: s} }
func Int(i int64) Value         { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value     { return Value{Kind: KindFloat, Float: f} }
func Bool(b bool) Value         { return Value{Kind: KindBool, Bool: b} }
func List(items []string) Value { return Value{Kind: KindList, List: append([]string{}, items...)} }

// Time renders a timestamp the way the ledger stores it
func Time(t time.Time) Value {
	return String(t.UTC().Format(time.RFC3339))
}

func (v Value) astValue() *ast.Value {
	switch v.Kind {
	case KindInt:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(v.Int, 10)}
	case KindFloat:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(v.Float, 'f', -1, 64)}
	case KindBool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(v.Bool)}
	case KindList:
		children := make(ast.ChildValueList, 0, len(v.List))
		for _, item := range v.List {
			children = append(children, &ast.ChildValue{Value: &ast.Value{Kind: ast.StringValue, Raw: item}})
		}
		return &ast.Value{Kind: ast.ListValue, Children: children}
	default:
		return &ast.Value{Kind: ast.StringValue, Raw: v.Str}
	}
}

// Clause is one typed comparison on one ledger field, or a disjunction of predicates when AnyOf is set
type Clause struct {
	Field string
	Op    Operator
	Value Value
	AnyOf []*Predicate
}

// Predicate is a conjunction of clauses
type Predicate struct {
	Clauses []Clause
}

// NewPredicate returns an empty predicate
func NewPredicate() *Predicate {
	return &Predicate{}
}

// Add appends a clause and returns the predicate for chaining
func (p *Predicate) Add(field string, op Operator, value Value) *Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: op, Value: value})
	return p
}

func (p *Predicate) Equal(field string, value Value) *Predicate {
	return p.Add(field, OpEqualTo, value)
}

func (p *Predicate) NotEqual(field string, value Value) *Predicate {
	return p.Add(field, OpNotEqualTo, value)
}

func (p *Predicate) In(field string, values []string) *Predicate {
	return p.Add(field, OpIn, List(values))
}

func (p *Predicate) NotIn(field string, values []string) *Predicate {
	return p.Add(field, OpNotIn, List(values))
}

func (p *Predicate) IsNull(field string, null bool) *Predicate {
	return p.Add(field, OpIsNull, Bool(null))
}

func (p *Predicate) AtLeast(field string, value Value) *Predicate {
	return p.Add(field, OpGreaterThanOrEqualTo, value)
}

func (p *Predicate) AtMost(field string, value Value) *Predicate {
	return p.Add(field, OpLessThanOrEqualTo, value)
}

// Or appends a clause that holds when any of the alternatives holds
func (p *Predicate) Or(alternatives ...*Predicate) *Predicate {
	p.Clauses = append(p.Clauses, Clause{AnyOf: alternatives})
	return p
}

// Find returns the first clause on field with the given operator
func (p *Predicate) Find(field string, op Operator) (Clause, bool) {
	if p == nil {
		return Clause{}, false
	}
	for _, c := range p.Clauses {
		if c.AnyOf == nil && c.Field == field && c.Op == op {
			return c, true
		}
	}
	return Clause{}, false
}

// Len returns the number of clauses
func (p *Predicate) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Clauses)
}

// filter value shape: {and: [{field: {op: value}}, {or: [{and: [...]}, ...]}, ...]}
func (p *Predicate) astValue() *ast.Value {
	items := make(ast.ChildValueList, 0, len(p.Clauses))
	for _, c := range p.Clauses {
		if c.AnyOf != nil {
			alternatives := make(ast.ChildValueList, 0, len(c.AnyOf))
			for _, alt := range c.AnyOf {
				alternatives = append(alternatives, &ast.ChildValue{Value: alt.astValue()})
			}
			items = append(items, &ast.ChildValue{Value: &ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
				{Name: "or", Value: &ast.Value{Kind: ast.ListValue, Children: alternatives}},
			}}})
			continue
		}
		cmp := &ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
			{Name: string(c.Op), Value: c.Value.astValue()},
		}}
		items = append(items, &ast.ChildValue{Value: &ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
			{Name: c.Field, Value: cmp},
		}}})
	}
	return &ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
		{Name: "and", Value: &ast.Value{Kind: ast.ListValue, Children: items}},
	}}
}

// OrderToken is a ledger sort enum such as TIMESTAMP_LIST_DESC
type OrderToken string

// Query is a single connection request against the ledger index
type Query struct {
	// Name is the GraphQL operation name, used for logs only
	Name    string
	Root    Root
	Filter  *Predicate
	OrderBy []OrderToken
	First   *int
	Offset  *int
	// Fields selected on each node; empty requests only the count
	Fields []string
}

// Document builds the GraphQL document for the query
func (q *Query) Document() *ast.QueryDocument {
	field := &ast.Field{
		Alias:        string(q.Root),
		Name:         string(q.Root),
		Arguments:    q.arguments(),
		SelectionSet: q.selection(),
	}

	return &ast.QueryDocument{
		Operations: ast.OperationList{
			{
				Operation:    ast.Query,
				Name:         q.Name,
				SelectionSet: ast.SelectionSet{field},
			},
		},
	}
}

// String renders the query text sent to the ledger
func (q *Query) String() string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(q.Document())
	return strings.TrimSpace(buf.String())
}

func (q *Query) arguments() ast.ArgumentList {
	var args ast.ArgumentList
	if q.First != nil {
		args = append(args, &ast.Argument{Name: "first", Value: &ast.Value{Kind: ast.IntValue, Raw: strconv.Itoa(*q.First)}})
	}
	if q.Offset != nil {
		args = append(args, &ast.Argument{Name: "offset", Value: &ast.Value{Kind: ast.IntValue, Raw: strconv.Itoa(*q.Offset)}})
	}
	if len(q.OrderBy) > 0 {
		children := make(ast.ChildValueList, 0, len(q.OrderBy))
		for _, token := range q.OrderBy {
			children = append(children, &ast.ChildValue{Value: &ast.Value{Kind: ast.EnumValue, Raw: string(token)}})
		}
		args = append(args, &ast.Argument{Name: "orderBy", Value: &ast.Value{Kind: ast.ListValue, Children: children}})
	}
	if q.Filter.Len() > 0 {
		args = append(args, &ast.Argument{Name: "filter", Value: q.Filter.astValue()})
	}
	return args
}

func (q *Query) selection() ast.SelectionSet {
	set := ast.SelectionSet{
		&ast.Field{Alias: "totalCount", Name: "totalCount"},
		&ast.Field{Alias: "pageInfo", Name: "pageInfo", SelectionSet: ast.SelectionSet{
			&ast.Field{Alias: "hasNextPage", Name: "hasNextPage"},
			&ast.Field{Alias: "hasPreviousPage", Name: "hasPreviousPage"},
		}},
	}
	if len(q.Fields) == 0 {
		return set
	}

	nodes := make(ast.SelectionSet, 0, len(q.Fields))
	for _, f := range q.Fields {
		nodes = append(nodes, &ast.Field{Alias: f, Name: f})
	}
	return append(set, &ast.Field{Alias: "nodes", Name: "nodes", SelectionSet: nodes})
}
