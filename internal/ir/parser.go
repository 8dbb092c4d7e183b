package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Serosh-commits/Aion/internal/support"
)

// ParseString parses one module from its printed textual form. This is the
// engine's own IR syntax (there is no LLVM binding available to a pure-Go
// tool); the parser accepts what this package prints. Temporaries get fresh
// IDs in order of definition, so reprinting a parsed module can renumber
// its "%tN" names.
func ParseString(name, text string) (*Module, error) {
	p := &parser{lines: strings.Split(text, "\n")}
	mod, err := p.parseModule(name)
	if err != nil {
		return nil, support.WrapError(support.ParseError, fmt.Sprintf("failed to parse IR string %q", name), err)
	}
	return mod, nil
}

type parser struct {
	lines []string
	pos   int
}

func (p *parser) peek() (string, bool) {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), ";") {
			p.pos++
			continue
		}
		return line, true
	}
	return "", false
}

func (p *parser) next() (string, bool) {
	line, ok := p.peek()
	if ok {
		p.pos++
	}
	return line, ok
}

func (p *parser) parseModule(name string) (*Module, error) {
	mod := NewModule(name)
	for {
		line, ok := p.peek()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "declare "):
			p.pos++
			fn, err := parseDeclare(trimmed)
			if err != nil {
				return nil, err
			}
			mod.AddFunction(fn)
		case strings.HasPrefix(trimmed, "func "):
			p.pos++
			fn, err := p.parseFunction(trimmed)
			if err != nil {
				return nil, err
			}
			mod.AddFunction(fn)
		case strings.HasPrefix(trimmed, "global "):
			p.pos++
		default:
			return nil, fmt.Errorf("unexpected line %q", line)
		}
	}
	return mod, nil
}

func parseSignatureHead(rest string) (name string, params []*Value, ret string, err error) {
	open := strings.Index(rest, "(")
	closeIdx := strings.Index(rest, ")")
	if open < 0 || closeIdx < 0 || closeIdx < open {
		return "", nil, "", fmt.Errorf("malformed signature %q", rest)
	}
	name = strings.TrimSpace(rest[:open])
	paramStr := strings.TrimSpace(rest[open+1 : closeIdx])
	ret = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[closeIdx+1:]), "{"))
	ret = strings.TrimSpace(ret)
	if paramStr != "" {
		for i, p := range strings.Split(paramStr, ",") {
			p = strings.TrimSpace(p)
			parts := strings.SplitN(p, ":", 2)
			pname := strings.TrimPrefix(strings.TrimSpace(parts[0]), "%")
			ptype := ""
			if len(parts) == 2 {
				ptype = strings.TrimSpace(parts[1])
			}
			params = append(params, &Value{ID: i, Name: pname, Type: ptype, Kind: ValueParameter})
		}
	}
	return name, params, ret, nil
}

func parseDeclare(line string) (*Function, error) {
	rest := strings.TrimPrefix(line, "declare ")
	name, params, ret, err := parseSignatureHead(rest)
	if err != nil {
		return nil, err
	}
	return NewDeclaration(name, params, ret), nil
}

func (p *parser) parseFunction(header string) (*Function, error) {
	rest := strings.TrimPrefix(header, "func ")
	name, params, ret, err := parseSignatureHead(rest)
	if err != nil {
		return nil, err
	}
	fn := &Function{Name: name, Parameters: params, ReturnType: ret}
	fn.nextValueID = len(params)

	blocks := map[string]*BasicBlock{}
	var order []*BasicBlock
	ensureBlock := func(label string) *BasicBlock {
		if b, ok := blocks[label]; ok {
			return b
		}
		b := NewBasicBlock(label)
		b.Index = len(order)
		blocks[label] = b
		order = append(order, b)
		return b
	}

	vr := &valueRef{fn: fn, byName: map[string]*Value{}}
	for _, param := range params {
		vr.byName[param.String()] = param
	}

	var cur *BasicBlock
	for {
		line, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("unexpected EOF inside function %s", name)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "}" {
			break
		}
		if strings.HasSuffix(trimmed, ":") && !strings.HasPrefix(line, "  ") {
			label := strings.TrimSuffix(trimmed, ":")
			cur = ensureBlock(label)
			continue
		}
		if cur == nil {
			cur = ensureBlock("entry")
		}
		instr, err := parseInstruction(trimmed, vr, ensureBlock)
		if err != nil {
			return nil, err
		}
		cur.AddInstruction(instr)
	}

	fn.Blocks = order
	if len(order) > 0 {
		fn.Entry = order[0]
	}
	// Wire successors/predecessors from terminators now that all blocks exist.
	for _, b := range order {
		switch t := b.Terminator().(type) {
		case *Jump:
			b.AddSuccessor(t.Target)
		case *Branch:
			b.AddSuccessor(t.TrueBlock)
			b.AddSuccessor(t.FalseBlock)
		}
	}
	return fn, nil
}

// valueRef tracks values already seen within a function body so repeated
// references (e.g. a temporary used, then reused) resolve to the same
// *Value rather than creating aliases.
type valueRef struct {
	fn     *Function
	byName map[string]*Value
}

func parseInstruction(text string, vr *valueRef, ensureBlock func(string) *BasicBlock) (Instruction, error) {
	switch {
	case strings.HasPrefix(text, "return"):
		rest := strings.TrimSpace(strings.TrimPrefix(text, "return"))
		if rest == "" {
			return &Return{}, nil
		}
		return &Return{Value: vr.resolve(rest)}, nil
	case strings.HasPrefix(text, "jump "):
		target := strings.TrimSpace(strings.TrimPrefix(text, "jump "))
		return &Jump{Target: ensureBlock(target)}, nil
	case strings.HasPrefix(text, "branch "):
		rest := strings.TrimPrefix(text, "branch ")
		parts := splitTopLevelCommas(rest)
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed branch %q", text)
		}
		return &Branch{
			Condition:  vr.resolve(strings.TrimSpace(parts[0])),
			TrueBlock:  ensureBlock(strings.TrimSpace(parts[1])),
			FalseBlock: ensureBlock(strings.TrimSpace(parts[2])),
		}, nil
	case strings.HasPrefix(text, "store "):
		rest := strings.TrimPrefix(text, "store ")
		parts := splitTopLevelCommas(rest)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed store %q", text)
		}
		return &Store{Value: vr.resolve(strings.TrimSpace(parts[0])), Address: vr.resolve(strings.TrimSpace(parts[1]))}, nil
	}

	if idx := strings.Index(text, " = "); idx >= 0 {
		lhs := strings.TrimSpace(text[:idx])
		rhs := strings.TrimSpace(text[idx+3:])
		dest := vr.define(lhs)

		switch {
		case strings.HasPrefix(rhs, "alloca "):
			return &Alloca{Dest: dest, Type: strings.TrimPrefix(rhs, "alloca ")}, nil
		case strings.HasPrefix(rhs, "load "):
			return &Load{Dest: dest, Address: vr.resolve(strings.TrimPrefix(rhs, "load "))}, nil
		case strings.HasPrefix(rhs, "call "):
			callee, args := parseCall(strings.TrimPrefix(rhs, "call "))
			var vargs []*Value
			for _, a := range args {
				vargs = append(vargs, vr.resolve(a))
			}
			return &Call{Dest: dest, Callee: callee, Args: vargs}, nil
		case strings.HasPrefix(rhs, "phi "):
			incoming, err := parsePhiIncoming(strings.TrimPrefix(rhs, "phi "), vr, ensureBlock)
			if err != nil {
				return nil, err
			}
			return &Phi{Dest: dest, Incoming: incoming}, nil
		default:
			op, l, r, err := parseBinary(rhs)
			if err == nil {
				return &BinaryOp{Op: op, Dest: dest, Left: vr.resolve(l), Right: vr.resolve(r)}, nil
			}
			return &Copy{Dest: dest, Value: vr.resolve(rhs)}, nil
		}
	}

	if strings.HasPrefix(text, "call ") {
		callee, args := parseCall(strings.TrimPrefix(text, "call "))
		var vargs []*Value
		for _, a := range args {
			vargs = append(vargs, vr.resolve(a))
		}
		return &Call{Callee: callee, Args: vargs}, nil
	}

	return nil, fmt.Errorf("unrecognized instruction %q", text)
}

// parsePhiIncoming parses a comma-separated list of "[value, block]" pairs
// following a phi's opcode, resolving each value and forward-declaring each
// block through ensureBlock.
func parsePhiIncoming(text string, vr *valueRef, ensureBlock func(string) *BasicBlock) ([]PhiIncoming, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var incoming []PhiIncoming
	for _, part := range splitTopLevelCommas(text) {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "[")
		part = strings.TrimSuffix(part, "]")
		pair := strings.SplitN(part, ",", 2)
		if len(pair) != 2 {
			return nil, fmt.Errorf("malformed phi operand %q", part)
		}
		value := vr.resolve(strings.TrimSpace(pair[0]))
		block := ensureBlock(strings.TrimSpace(pair[1]))
		incoming = append(incoming, PhiIncoming{Value: value, Block: block})
	}
	return incoming, nil
}

func parseCall(text string) (callee string, args []string) {
	open := strings.Index(text, "(")
	if open < 0 {
		return strings.TrimSpace(text), nil
	}
	callee = strings.TrimSpace(text[:open])
	inner := strings.TrimSuffix(text[open+1:], ")")
	inner = strings.TrimSuffix(strings.TrimSpace(inner), ")")
	if strings.TrimSpace(inner) == "" {
		return callee, nil
	}
	for _, a := range splitTopLevelCommas(inner) {
		args = append(args, strings.TrimSpace(a))
	}
	return callee, args
}

func parseBinary(text string) (BinaryOperator, string, string, error) {
	ops := []struct {
		sym string
		op  BinaryOperator
	}{
		{"==", OpEq}, {"!=", OpNeq}, {"<=", OpLe}, {">=", OpGe},
		{"&&", OpAnd}, {"||", OpOr},
		{"+", OpAdd}, {"-", OpSub}, {"*", OpMul}, {"/", OpDiv}, {"%", OpMod},
		{"<", OpLt}, {">", OpGt},
	}
	for _, o := range ops {
		if idx := strings.Index(text, " "+o.sym+" "); idx >= 0 {
			return o.op, strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(o.sym)+2:]), nil
		}
	}
	return 0, "", "", fmt.Errorf("not a binary expression: %q", text)
}

func splitTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	last := 0
	for i, c := range s {
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}

func (vr *valueRef) define(text string) *Value {
	if v, ok := vr.byName[text]; ok {
		return v
	}
	v := &Value{ID: vr.fn.nextValueID, Kind: ValueTemporary}
	vr.fn.nextValueID++
	if strings.HasPrefix(text, "%") {
		v.Name = strings.TrimPrefix(text, "%")
	}
	vr.byName[text] = v
	return v
}

func (vr *valueRef) resolve(text string) *Value {
	if v, ok := vr.byName[text]; ok {
		return v
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		v := &Value{Kind: ValueConstant, Constant: n}
		vr.byName[text] = v
		return v
	}
	if b, err := strconv.ParseBool(text); err == nil {
		v := &Value{Kind: ValueConstant, Constant: b}
		vr.byName[text] = v
		return v
	}
	v := &Value{ID: vr.fn.nextValueID, Kind: ValueVariable, Name: strings.TrimPrefix(text, "%")}
	vr.fn.nextValueID++
	vr.byName[text] = v
	return v
}
