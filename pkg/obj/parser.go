package obj

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Option configures Parse
type Option func(*parser)

// WithLogger sets the logger used for parse diagnostics. The default
// discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

type parser struct {
	model  *Model
	logger *zap.Logger

	object *objectData
	group  *groupData

	skipped map[string]int
}

func newParser(opts ...Option) *parser {
	p := &parser{
		model:   &Model{},
		logger:  zap.NewNop(),
		skipped: make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a complete OBJ document and returns the resulting model.
// The first malformed directive aborts the parse with a *ParseError.
// Directives other than v, vt, vn, f, o and g are ignored.
func Parse(text string, opts ...Option) (*Model, error) {
	p := newParser(opts...)

	for rec, err := range Records(text) {
		if err != nil {
			return nil, err
		}
		if err := p.handle(rec); err != nil {
			return nil, err
		}
	}

	for _, keyword := range slices.Sorted(maps.Keys(p.skipped)) {
		p.logger.Debug("skipped unsupported directive",
			zap.String("keyword", keyword),
			zap.Int("count", p.skipped[keyword]))
	}

	m := p.model
	p.logger.Debug("parsed OBJ",
		zap.Int("positions", len(m.positions)),
		zap.Int("texcoords", len(m.texcoords)),
		zap.Int("normals", len(m.normals)),
		zap.Int("objects", len(m.objects)),
		zap.Int("faces", m.faceCount),
		zap.Int("triangles", m.triangleCount))

	return m, nil
}

func (p *parser) handle(rec Record) error {
	switch rec.Keyword() {
	case "v":
		return p.parsePosition(rec)
	case "vt":
		return p.parseTexCoord(rec)
	case "vn":
		return p.parseNormal(rec)
	case "f":
		return p.parseFace(rec)
	case "o":
		p.object = &objectData{name: nameOf(rec)}
		p.group = nil
		p.model.objects = append(p.model.objects, p.object)
	case "g":
		p.selectGroup(nameOf(rec))
	default:
		p.skipped[rec.Keyword()]++
	}
	return nil
}

func (p *parser) parsePosition(rec Record) error {
	args := rec.Args()
	if len(args) != 3 && len(args) != 4 {
		return newParseError(rec, ErrInvalidVertex, "expected 3 or 4 coordinates, got %d", len(args))
	}

	nums, err := parseFloats(rec, args, ErrInvalidVertex)
	if err != nil {
		return err
	}

	pos := Position{X: nums[0], Y: nums[1], Z: nums[2], W: 1.0}
	if len(nums) == 4 {
		pos.W = nums[3]
	}
	p.model.positions = append(p.model.positions, pos)
	return nil
}

func (p *parser) parseTexCoord(rec Record) error {
	args := rec.Args()
	if len(args) < 1 || len(args) > 3 {
		return newParseError(rec, ErrInvalidTexcoord, "expected 1 to 3 coordinates, got %d", len(args))
	}

	nums, err := parseFloats(rec, args, ErrInvalidTexcoord)
	if err != nil {
		return err
	}

	var uvw [3]float64
	copy(uvw[:], nums)
	p.model.texcoords = append(p.model.texcoords, TexCoord{U: uvw[0], V: uvw[1], W: uvw[2]})
	return nil
}

func (p *parser) parseNormal(rec Record) error {
	args := rec.Args()
	if len(args) != 3 {
		return newParseError(rec, ErrInvalidNormal, "expected 3 components, got %d", len(args))
	}

	nums, err := parseFloats(rec, args, ErrInvalidNormal)
	if err != nil {
		return err
	}

	p.model.normals = append(p.model.normals, Normal{X: nums[0], Y: nums[1], Z: nums[2]})
	return nil
}

func (p *parser) parseFace(rec Record) error {
	args := rec.Args()
	if len(args) < 3 {
		return newParseError(rec, ErrInvalidFace, "expected at least 3 vertices, got %d", len(args))
	}

	m := p.model
	start := len(m.refs)
	for _, field := range args {
		ref, err := p.parseVertexRef(rec, field)
		if err != nil {
			m.refs = m.refs[:start]
			return err
		}
		m.refs = append(m.refs, ref)
	}

	group := p.currentGroup()
	group.faces = append(group.faces, faceRange{start: start, end: len(m.refs)})
	m.faceCount++
	m.triangleCount += len(args) - 2
	return nil
}

// parseVertexRef parses one of p, p/t, p//n or p/t/n
func (p *parser) parseVertexRef(rec Record, field string) (VertexRef, error) {
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return VertexRef{}, newParseError(rec, ErrInvalidFace, "too many components in %q", field)
	}
	if parts[0] == "" {
		return VertexRef{}, newParseError(rec, ErrInvalidFace, "missing position index in %q", field)
	}

	m := p.model
	var ref VertexRef

	pos, err := resolveField(rec, field, parts[0], "position", len(m.positions))
	if err != nil {
		return VertexRef{}, err
	}
	ref.Position = pos

	if len(parts) > 1 && parts[1] != "" {
		tex, err := resolveField(rec, field, parts[1], "texture coordinate", len(m.texcoords))
		if err != nil {
			return VertexRef{}, err
		}
		ref.TexCoord = someIndex(tex)
	}

	if len(parts) > 2 && parts[2] != "" {
		norm, err := resolveField(rec, field, parts[2], "normal", len(m.normals))
		if err != nil {
			return VertexRef{}, err
		}
		ref.Normal = someIndex(norm)
	}

	return ref, nil
}

func resolveField(rec Record, field, s, channel string, length int) (int, error) {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, newParseError(rec, ErrInvalidFace, "bad %s index %q in %q", channel, s, field)
	}

	index, err := resolveIndex(value, length)
	if err != nil {
		return 0, newParseError(rec, ErrIndexOutOfRange, "%s index %d with %d declared", channel, value, length)
	}
	return index, nil
}

// selectGroup makes the named group of the current object active,
// creating it on first use
func (p *parser) selectGroup(name string) {
	object := p.currentObject()
	for _, g := range object.groups {
		if g.name == name {
			p.group = g
			return
		}
	}
	p.group = &groupData{name: name}
	object.groups = append(object.groups, p.group)
}

// currentGroup returns the active group, creating the unnamed default group
// when faces appear before any "g" directive
func (p *parser) currentGroup() *groupData {
	if p.group == nil {
		p.selectGroup("")
	}
	return p.group
}

func (p *parser) currentObject() *objectData {
	if p.object == nil {
		p.object = &objectData{}
		p.model.objects = append(p.model.objects, p.object)
	}
	return p.object
}

func parseFloats(rec Record, fields []string, kind error) ([]float64, error) {
	nums := make([]float64, len(fields))
	for i, s := range fields {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, newParseError(rec, kind, "bad number %q", s)
		}
		nums[i] = f
	}
	return nums, nil
}

func nameOf(rec Record) string {
	return strings.Join(rec.Args(), " ")
}
