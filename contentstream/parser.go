package contentstream

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pagedraw/pagedraw/core"
)

// Operation is a single content stream operation: an operator preceded by
// its operands. For inline images the operator is "BI" and the operands are
// the image parameter dictionary followed by the raw sample bytes.
type Operation struct {
	Operator string
	Operands []core.Object
}

// Parser tokenizes a content stream into an ordered sequence of operations.
type Parser struct {
	data  []byte
	pos   int
	stack []core.Object
	ops   []Operation
}

// NewParser creates a parser over one scope's raw operator bytes.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse consumes the whole stream and returns its operations in order.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			break
		}
		if err := p.parseNext(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

// parseNext parses one token: an operand is pushed onto the pending stack,
// an operator consumes the stack into an Operation.
func (p *Parser) parseNext() error {
	start := p.pos
	c := p.data[p.pos]

	// ' and " are operators despite not being letters; true/false/null are
	// keyword operands despite being letter runs
	if (isLetter(c) || c == '\'' || c == '"') && !p.peekKeyword() {
		return p.parseOperator()
	}

	operand, err := p.parseOperand()
	if err != nil {
		return fmt.Errorf("at position %d: %w", start, err)
	}
	p.stack = append(p.stack, operand)
	return nil
}

// peekKeyword reports whether the next token is one of the keyword operands.
func (p *Parser) peekKeyword() bool {
	end := p.pos
	for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
		end++
	}
	switch string(p.data[p.pos:end]) {
	case "true", "false", "null":
		return true
	}
	return false
}

// parseOperator reads an operator name and emits an Operation carrying the
// pending operands. The BI operator switches into inline image parsing.
func (p *Parser) parseOperator() error {
	start := p.pos

	var op bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isLetter(c) || c == '\'' || c == '"' || c == '*' || (c >= '0' && c <= '9') {
			op.WriteByte(c)
			p.pos++
		} else {
			break
		}
	}

	operator := op.String()
	if operator == "" {
		return fmt.Errorf("empty operator at position %d", start)
	}

	if operator == "BI" {
		return p.parseInlineImage()
	}

	p.emit(operator)
	return nil
}

// emit appends an Operation for operator with the pending operand stack and
// clears the stack.
func (p *Parser) emit(operator string) {
	operands := make([]core.Object, len(p.stack))
	copy(operands, p.stack)
	p.stack = p.stack[:0]
	p.ops = append(p.ops, Operation{Operator: operator, Operands: operands})
}

// parseInlineImage parses the key/value pairs between BI and ID, then the
// raw sample bytes up to the EI marker. The result is one "BI" operation
// whose operands are the parameter dictionary and the sample bytes.
func (p *Parser) parseInlineImage() error {
	dict := make(core.Dict)

	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return fmt.Errorf("inline image missing ID marker")
		}

		// ID terminates the parameter list
		if p.data[p.pos] == 'I' && p.pos+1 < len(p.data) && p.data[p.pos+1] == 'D' {
			p.pos += 2
			break
		}

		if p.data[p.pos] != '/' {
			return fmt.Errorf("inline image key at position %d must be a name", p.pos)
		}
		key, err := p.parseName()
		if err != nil {
			return err
		}

		p.skipWhitespace()
		value, err := p.parseOperand()
		if err != nil {
			return err
		}
		dict[string(key.(core.Name))] = value
	}

	// exactly one whitespace byte separates ID from the sample data
	if p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}

	data, err := p.readInlineImageData()
	if err != nil {
		return err
	}

	p.stack = p.stack[:0]
	p.ops = append(p.ops, Operation{
		Operator: "BI",
		Operands: []core.Object{dict, core.String(data)},
	})
	return nil
}

// readInlineImageData scans for the EI marker: E, I, each preceded by
// whitespace and followed by whitespace or end of stream. Binary sample data
// can contain the letters EI, so the whitespace context is required.
func (p *Parser) readInlineImageData() ([]byte, error) {
	start := p.pos
	for i := p.pos; i+1 < len(p.data); i++ {
		if p.data[i] != 'E' || p.data[i+1] != 'I' {
			continue
		}
		if i > start && !isWhitespace(p.data[i-1]) {
			continue
		}
		if i+2 < len(p.data) && !isWhitespace(p.data[i+2]) {
			continue
		}
		end := i
		// the whitespace before EI belongs to the marker, not the data
		if end > start {
			end--
		}
		p.pos = i + 2
		return p.data[start:end], nil
	}
	return nil, fmt.Errorf("inline image missing EI marker")
}

// parseOperand parses a single operand: number, string, name, array,
// dictionary, boolean, or null.
func (p *Parser) parseOperand() (core.Object, error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	c := p.data[p.pos]
	switch {
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '/':
		return p.parseName()
	case c == '[':
		return p.parseArray()
	case c == '<':
		if p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
			return p.parseDict()
		}
		return p.parseHexString()
	}

	// boolean or null keyword
	if c == 't' || c == 'f' || c == 'n' {
		end := p.pos
		for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
			end++
		}
		switch string(p.data[p.pos:end]) {
		case "true":
			p.pos = end
			return core.Bool(true), nil
		case "false":
			p.pos = end
			return core.Bool(false), nil
		case "null":
			p.pos = end
			return core.Null{}, nil
		}
	}

	return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, c)
}

// parseNumber parses an integer or real operand.
func (p *Parser) parseNumber() (core.Object, error) {
	start := p.pos
	hasDecimal := false

	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			p.pos++
		} else {
			break
		}
	}

	numStr := string(p.data[start:p.pos])
	if hasDecimal {
		val, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number %q: %w", numStr, err)
		}
		return core.Real(val), nil
	}
	val, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", numStr, err)
	}
	return core.Int(val), nil
}

// parseString parses a literal string (...) with escape handling.
func (p *Parser) parseString() (core.Object, error) {
	p.pos++ // skip '('

	var result bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]

		switch {
		case c == '\\' && p.pos+1 < len(p.data):
			p.pos++
			next := p.data[p.pos]
			switch next {
			case 'n':
				result.WriteByte('\n')
				p.pos++
			case 'r':
				result.WriteByte('\r')
				p.pos++
			case 't':
				result.WriteByte('\t')
				p.pos++
			case 'b':
				result.WriteByte('\b')
				p.pos++
			case 'f':
				result.WriteByte('\f')
				p.pos++
			case '(', ')', '\\':
				result.WriteByte(next)
				p.pos++
			case '\r':
				// line continuation
				p.pos++
				if p.pos < len(p.data) && p.data[p.pos] == '\n' {
					p.pos++
				}
			case '\n':
				p.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				// octal escape, up to three digits
				val := int(next - '0')
				p.pos++
				for i := 0; i < 2 && p.pos < len(p.data); i++ {
					d := p.data[p.pos]
					if d < '0' || d > '7' {
						break
					}
					val = val*8 + int(d-'0')
					p.pos++
				}
				result.WriteByte(byte(val & 0xFF))
			default:
				// unknown escape keeps the escaped byte
				result.WriteByte(next)
				p.pos++
			}
		case c == '(':
			depth++
			result.WriteByte(c)
			p.pos++
		case c == ')':
			depth--
			if depth > 0 {
				result.WriteByte(c)
			}
			p.pos++
		default:
			result.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unclosed string")
	}
	return core.String(result.String()), nil
}

// parseHexString parses a hexadecimal string <...>.
func (p *Parser) parseHexString() (core.Object, error) {
	p.pos++ // skip '<'

	var result bytes.Buffer
	var hi byte
	havePair := false

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '>' {
			p.pos++
			if havePair {
				// odd digit count pads with zero
				result.WriteByte(hi << 4)
			}
			return core.String(result.String()), nil
		}
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit: %c", c)
		}
		if havePair {
			result.WriteByte(hi<<4 | hexValue(c))
			havePair = false
		} else {
			hi = hexValue(c)
			havePair = true
		}
		p.pos++
	}
	return nil, fmt.Errorf("unclosed hex string")
}

// parseName parses a name object /Name with # escape handling.
func (p *Parser) parseName() (core.Object, error) {
	p.pos++ // skip '/'

	var result bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) &&
			isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			result.WriteByte(hexValue(p.data[p.pos+1])<<4 | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		result.WriteByte(c)
		p.pos++
	}
	return core.Name(result.String()), nil
}

// parseArray parses an array [...] of operands.
func (p *Parser) parseArray() (core.Object, error) {
	p.pos++ // skip '['

	var arr core.Array
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		obj, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// parseDict parses a dictionary <<...>>; ExtGState operands and inline image
// parameters use these.
func (p *Parser) parseDict() (core.Object, error) {
	p.pos += 2 // skip '<<'

	dict := make(core.Dict)
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}
		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			return dict, nil
		}

		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key at position %d must be a name", p.pos)
		}
		key, err := p.parseName()
		if err != nil {
			return nil, err
		}
		value, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		dict[string(key.(core.Name))] = value
	}
}

// skipWhitespace advances past whitespace and % comments.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if c == '%' {
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
			continue
		}
		break
	}
}

// isWhitespace reports whether c is a content stream whitespace byte.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDelimiter reports whether c is a delimiter byte.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
