package iitii

import "github.com/sirupsen/logrus"

// Logger is the narrow interface the builder calls through to report
// degenerate regression fits (§7). It is satisfied directly by
// *logrus.Logger and *logrus.Entry.
type Logger interface {
	WithFields(fields logrus.Fields) *logrus.Entry
}

// BuilderOption configures a Builder at construction time.
type BuilderOption[P Pos] func(*builderConfig[P])

type builderConfig[P Pos] struct {
	strict     bool
	trainLevel int
	logger     Logger
}

func defaultBuilderConfig[P Pos]() builderConfig[P] {
	return builderConfig[P]{strict: false, trainLevel: 0, logger: nil}
}

// WithStrictValidation makes Build/BuildII check beg(item) <= end(item)
// for every item and return ErrInvalidInterval on the first violation,
// instead of leaving the violation as undefined behavior (§7).
func WithStrictValidation[P Pos]() BuilderOption[P] {
	return func(c *builderConfig[P]) { c.strict = true }
}

// WithTrainingLevel overrides the tree level the IITII rank-prediction
// model is trained against (§4.5). The default, 0, trains against the
// leaves.
func WithTrainingLevel[P Pos](level int) BuilderOption[P] {
	return func(c *builderConfig[P]) { c.trainLevel = level }
}

// WithLogger attaches a structured logger that BuildII uses to report,
// at Debug level, every domain whose fitted model was rejected for its
// mean absolute residual and so falls back to a root-scan (§4.7).
// Domains with no training points, or whose fit is not finite, are
// also left without a model but are not logged. Build/BuildII never
// fail because of a rejected domain; this is diagnostic only.
func WithLogger[P Pos](l Logger) BuilderOption[P] {
	return func(c *builderConfig[P]) { c.logger = l }
}
