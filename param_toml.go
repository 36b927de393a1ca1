package ttcnplus

/*
param_toml.go contains the TOML front end of the module parameters.

A parameter is either a string in TTCN-3 notation, a TOML boolean, an
array (value list) or a shape table:

	[Mod]
	tsp_bits = "'0101'B"
	tsp_any  = "? ifpresent"
	tsp_flag = true

	[Mod.tsp_list]
	complement = ["'00'B", "'1*'B"]
	length     = [2, "infinity"]
	ifpresent  = true

Tables that hold none of the shape keys value, list, complement and
concat are namespaces: parameters found within them are named
"<table>.<key>".
*/

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

/*
ModuleParams maps dotted parameter names to their parsed values.
*/
type ModuleParams map[string]*ParsedParam

/*
ParseModuleParams returns an instance of [ModuleParams] alongside an
error following an attempt to parse the TOML document data.
*/
func ParseModuleParams(data []byte) (m ModuleParams, err error) {
	var raw map[string]any
	if _, err = toml.Decode(string(data), &raw); err != nil {
		err = paramErr{mkerrf("TOML: ", err), ErrBadLiteral}
		return
	}
	return collectParams(raw)
}

/*
LoadModuleParams reads and parses the TOML file at path.
*/
func LoadModuleParams(path string) (m ModuleParams, err error) {
	var raw map[string]any
	if _, err = toml.DecodeFile(path, &raw); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			err = paramErr{mkerrf("TOML: ", path, ": ", err), ErrBadLiteral}
		}
		return
	}
	if m, err = collectParams(raw); err == nil {
		Logger().Debug("module parameters loaded",
			zap.String("path", path),
			zap.Int("count", len(m)))
	}
	return
}

func collectParams(raw map[string]any) (m ModuleParams, err error) {
	m = make(ModuleParams)
	if err = m.collect("", raw); err != nil {
		m = nil
	}
	return
}

func (r ModuleParams) collect(prefix string, tbl map[string]any) (err error) {
	keys := make([]string, 0, len(tbl))
	for k := range tbl {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for i := 0; i < len(keys) && err == nil; i++ {
		name := prefix + keys[i]
		if sub, ok := tbl[keys[i]].(map[string]any); ok && !isShapeTable(sub) {
			err = r.collect(name+".", sub)
			continue
		}

		var p *ParsedParam
		if p, err = tomlParam(name, tbl[keys[i]]); err == nil {
			r[name] = p
		}
	}
	return
}

/*
Lookup returns the parameter stored under name alongside a Boolean
value indicative of its presence.
*/
func (r ModuleParams) Lookup(name string) (p *ParsedParam, ok bool) {
	p, ok = r[name]
	return
}

/*
Bind applies the parameter stored under name to target, which may be
any value or template of this package.
*/
func (r ModuleParams) Bind(name string, target interface{ SetParam(*ParsedParam) error }) error {
	p, ok := r.Lookup(name)
	if !ok {
		return paramErr{mkerrf("module parameter ", quote(name), " is not defined"), ErrUnknownParam}
	}
	return target.SetParam(p)
}

func isShapeTable(tbl map[string]any) bool {
	for _, k := range []string{`value`, `list`, `complement`, `concat`} {
		if _, ok := tbl[k]; ok {
			return true
		}
	}
	return false
}

func tomlParam(name string, v any) (p *ParsedParam, err error) {
	switch tv := v.(type) {
	case string:
		p, err = parseParam(name, tv)
	case bool:
		p = &ParsedParam{Name: name, Kind: ParamBoolean, Literal: bool2str(tv)}
	case []any:
		p = &ParsedParam{Name: name, Kind: ParamList}
		p.Elems, err = tomlElems(name, tv)
	case map[string]any:
		p, err = tomlShape(name, tv)
	case int64, float64:
		p = &ParsedParam{Name: name}
		err = p.errorf("numeric values are not supported")
	default:
		p = &ParsedParam{Name: name}
		err = p.errorf("unsupported TOML value")
	}
	if err != nil {
		p = nil
	}
	return
}

func tomlElems(name string, vs []any) (elems []*ParsedParam, err error) {
	elems = make([]*ParsedParam, 0, len(vs))
	for i := 0; i < len(vs) && err == nil; i++ {
		var e *ParsedParam
		if e, err = tomlParam(name, vs[i]); err == nil {
			elems = append(elems, e)
		}
	}
	return
}

func tomlShape(name string, tbl map[string]any) (p *ParsedParam, err error) {
	p = &ParsedParam{Name: name}
	var shapes int
	for k, v := range tbl {
		switch k {
		case `value`:
			shapes++
			var inner *ParsedParam
			if inner, err = tomlParam(name, v); err == nil {
				ifp, l := p.IfPresent, p.Length
				*p = *inner
				p.IfPresent = p.IfPresent || ifp
				if l != nil {
					p.Length = l
				}
			}
		case `list`, `complement`:
			shapes++
			if p.Kind = ParamList; k == `complement` {
				p.Kind = ParamComplementList
			}
			if arr, ok := v.([]any); !ok {
				err = p.errorf("the ", k, " key requires an array")
			} else {
				p.Elems, err = tomlElems(name, arr)
			}
		case `concat`:
			shapes++
			err = p.tomlConcat(v)
		case `ifpresent`:
			if b, ok := v.(bool); !ok {
				err = p.errorf("the ifpresent key requires a boolean")
			} else {
				p.IfPresent = p.IfPresent || b
			}
		case `length`:
			var l LengthRestriction
			if l, err = tomlLength(v); err != nil {
				err = p.errorf(err)
			} else {
				p.Length = &l
			}
		default:
			err = p.errorf("unknown key ", quote(k), " in a parameter table")
		}
		if err != nil {
			return nil, err
		}
	}

	if shapes != 1 {
		err = p.errorf("a parameter table requires exactly one of value, list, complement or concat")
		p = nil
	}
	return
}

/*
tomlConcat folds an array of two or more operands from the left.
*/
func (r *ParsedParam) tomlConcat(v any) (err error) {
	arr, ok := v.([]any)
	if !ok || len(arr) < 2 {
		return r.errorf("the concat key requires an array of at least two operands")
	}

	var acc *ParsedParam
	if acc, err = tomlParam(r.Name, arr[0]); err != nil {
		return
	}
	for i := 1; i < len(arr) && err == nil; i++ {
		var next *ParsedParam
		if next, err = tomlParam(r.Name, arr[i]); err == nil {
			acc = &ParsedParam{Name: r.Name, Kind: ParamConcat, Operands: [2]*ParsedParam{acc, next}}
		}
	}
	if err == nil {
		r.Kind, r.Operands = acc.Kind, acc.Operands
	}
	return
}

/*
tomlLength reads an integer (exact length) or a two element array whose
upper bound may be the string "infinity".
*/
func tomlLength(v any) (l LengthRestriction, err error) {
	switch tv := v.(type) {
	case int64:
		if tv < 0 {
			err = negativeErrorf("the length is negative (", tv, ") in a template with length restriction")
			return
		}
		l = ExactLength(int(tv))
	case []any:
		lo, ok := int64(0), len(tv) == 2
		if ok {
			lo, ok = tv[0].(int64)
		}
		if !ok {
			err = literalErrorf("a length range requires [min, max] or [min, \"infinity\"]")
			return
		}
		switch hi := tv[1].(type) {
		case int64:
			l, err = NewLengthRange(int(lo), int(hi), true)
		case string:
			if hi != `infinity` {
				err = literalErrorf("unknown upper length bound ", quote(hi))
				return
			}
			l, err = NewLengthRange(int(lo), 0, false)
		default:
			err = literalErrorf("a length range requires [min, max] or [min, \"infinity\"]")
		}
	default:
		err = literalErrorf("a length restriction requires an integer or an array")
	}
	return
}
