package cmap

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Table documents are JSON objects of the form
//
//    {
//      "name":   "bijoy-to-unicode",
//      "syntax": "literal",
//      "rules":  [
//         ["†", "ে"],
//         ["(?m)^‡", "†", "regexp"]
//      ]
//    }
//
// "syntax" sets the default syntax for the rules of the table; a rule may
// override it with an optional third element. Rules are kept in document order.

// Parse reads a conversion map from a table document.
func Parse(doc []byte) (*Map, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("conversion table is not a valid JSON document")
	}
	name := gjson.GetBytes(doc, "name").String()
	if name == "" {
		return nil, errors.New("conversion table has no name")
	}
	syntax := Literal
	if s := gjson.GetBytes(doc, "syntax"); s.Exists() {
		var err error
		if syntax, err = ParseSyntax(s.String()); err != nil {
			return nil, errors.Wrapf(err, "conversion table %s", name)
		}
	}
	rules := gjson.GetBytes(doc, "rules")
	if !rules.IsArray() {
		return nil, errors.Errorf("conversion table %s: rules must be an array", name)
	}
	m := NewMap(name)
	var err error
	n := 0
	rules.ForEach(func(_, rule gjson.Result) bool {
		n++
		var r Rule
		if r, err = parseRule(rule, syntax); err != nil {
			err = errors.Wrapf(err, "conversion table %s, rule #%d", name, n)
			return false
		}
		if err = m.Add(r); err != nil {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("conversion table %s loaded with %d rules", name, m.Len())
	return m, nil
}

func parseRule(rule gjson.Result, syntax Syntax) (Rule, error) {
	if !rule.IsArray() {
		return Rule{}, errors.Errorf("rule must be an array, is %s", rule.Raw)
	}
	fields := rule.Array()
	if len(fields) < 2 || len(fields) > 3 {
		return Rule{}, errors.Errorf("rule must have 2 or 3 elements, has %d", len(fields))
	}
	for _, f := range fields {
		if f.Type != gjson.String {
			return Rule{}, errors.Errorf("rule elements must be strings, have %s", f.Raw)
		}
	}
	r := Rule{
		Pattern:     fields[0].String(),
		Replacement: fields[1].String(),
		Syntax:      syntax,
	}
	if len(fields) == 3 {
		var err error
		if r.Syntax, err = ParseSyntax(fields[2].String()); err != nil {
			return Rule{}, err
		}
	}
	return r, nil
}

// Load reads a conversion map from a reader delivering a table document.
func Load(r io.Reader) (*Map, error) {
	doc, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read conversion table")
	}
	return Parse(doc)
}
