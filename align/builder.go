package align

import (
	"github.com/ajroetker/go-pairalign/hwy"
	"github.com/ajroetker/go-pairalign/hwy/contrib/workerpool"
)

// ElementWidth selects the integer width the DP cells are stored in. int8
// and int16 give more SIMD lanes per Vec but saturate quickly and need
// the periodic rebase (4.4); int32 is wide enough that ordinary scores
// never saturate in practice, so the engine skips the saturated wrapper
// entirely.
type ElementWidth int

const (
	// Width16 is the default: enough range for most affine-gap scores
	// while still packing twice the lanes of Width32.
	Width16 ElementWidth = iota
	Width8
	Width32
)

// Config is the immutable assembly of everything an Engine needs: the
// substitution matrix, the gap model, the init/trailing/method policy
// choices, the element width, and whether the saturation audit runs.
// Builder constructs one, validated, and Build freezes it into an Engine.
type Config struct {
	Matrix         *ScoreModel
	Gap            GapModel
	InitRule       InitRule
	TrailingPolicy TrailingPolicy
	Method         Method
	Width          ElementWidth
	Audit          bool
	LaneWidth      int
}

// Builder assembles a Config piece by piece and freezes it into an
// Engine. Each With* method stores one piece, returning the builder for
// chaining; validation happens in Build, which fails with a *ConfigError
// if a required piece is missing or the lane width is not positive. Matching the pack's own preference for plain
// ownership over an interface hierarchy, Method and TrailingPolicy stay
// simple enums switched on inside the tracker and kernel rather than
// being modeled as pluggable strategy interfaces.
type Builder struct {
	matrixRows []MatrixRow
	gap        GapModel
	gapSet     bool
	initRule   InitRule
	trailing   TrailingPolicy
	method     Method
	width      ElementWidth
	audit      bool
	laneWidth  int
}

// NewBuilder returns a zero-value builder with documented defaults: lane
// width 8, penalize trailing policy, global method, Width16 elements, no
// audit.
func NewBuilder() *Builder {
	return &Builder{
		trailing:  TrailingPenalize,
		method:    MethodGlobal,
		width:     Width16,
		laneWidth: defaultLaneWidth,
	}
}

// WithMatrix stores the substitution matrix rows to build the rank map
// and dense score matrix from at Build time.
func (b *Builder) WithMatrix(rows []MatrixRow) *Builder {
	b.matrixRows = rows
	return b
}

// WithGapModel stores the affine gap open/extend costs.
func (b *Builder) WithGapModel(open, extend int32) *Builder {
	b.gap = GapModel{Open: open, Extend: extend}
	b.gapSet = true
	return b
}

// WithInitRule selects the leading-edge initialization rule.
func (b *Builder) WithInitRule(rule InitRule) *Builder {
	b.initRule = rule
	return b
}

// WithTrailingPolicy selects the trailing-edge gap policy.
func (b *Builder) WithTrailingPolicy(policy TrailingPolicy) *Builder {
	b.trailing = policy
	return b
}

// WithMethod selects global or local alignment.
func (b *Builder) WithMethod(method Method) *Builder {
	b.method = method
	return b
}

// WithElementWidth overrides the default Width16 cell storage width.
func (b *Builder) WithElementWidth(width ElementWidth) *Builder {
	b.width = width
	return b
}

// WithLaneWidth overrides the default row-lane tile width.
func (b *Builder) WithLaneWidth(width int) *Builder {
	b.laneWidth = width
	return b
}

// WithAudit enables the saturated wrapper's wide-reference overflow
// check. Gated by this flag rather than a build tag so a test binary can
// always exercise the audit path.
func (b *Builder) WithAudit(audit bool) *Builder {
	b.audit = audit
	return b
}

// Build validates the assembled configuration and freezes it into an
// Engine. A missing matrix or gap model is a construction-time failure;
// the core never begins a compute call in that state.
func (b *Builder) Build() (*Engine, error) {
	if len(b.matrixRows) == 0 {
		return nil, &ConfigError{Reason: "no substitution matrix configured"}
	}
	if !b.gapSet {
		return nil, &ConfigError{Reason: "no gap model configured"}
	}
	if b.laneWidth <= 0 {
		return nil, &ConfigError{Reason: "lane width must be positive"}
	}

	matrix, err := NewScoreModel(b.matrixRows)
	if err != nil {
		return nil, err
	}

	cfg := Config{
		Matrix:         matrix,
		Gap:            b.gap,
		InitRule:       b.initRule,
		TrailingPolicy: b.trailing,
		Method:         b.method,
		Width:          b.width,
		Audit:          b.audit,
		LaneWidth:      b.laneWidth,
	}

	switch b.width {
	case Width8:
		return buildEngine[int8](cfg, true, 0), nil
	case Width32:
		return buildEngine[int32](cfg, false, 0), nil
	default:
		return buildEngine[int16](cfg, true, 0), nil
	}
}

func buildEngine[T hwy.Integers](cfg Config, saturate bool, zeroOffset T) *Engine {
	ge := &genericEngine[T]{
		matrix:     cfg.Matrix,
		gap:        cfg.Gap,
		initRule:   cfg.InitRule,
		trailing:   cfg.TrailingPolicy,
		method:     cfg.Method,
		audit:      cfg.Audit,
		saturate:   saturate,
		zeroOffset: zeroOffset,
		laneWidth:  cfg.LaneWidth,
	}
	return &Engine{
		cfg:          cfg,
		maxLanes:     hwy.MaxLanes[T](),
		pool:         workerpool.New(0),
		computeOne:   ge.compute,
		computeLanes: ge.computeVector,
	}
}
