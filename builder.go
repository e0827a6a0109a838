package iitii

import "sort"

// Builder accumulates items and, on Build/BuildII, sorts and
// augments them into an immutable index. It generalizes the teacher
// package's Push/PushArray/Clear/BuildTree shape: accumulate one item
// at a time, accumulate many, and finalize into a queryable structure.
//
// The final buffer order before sorting never affects the resulting
// index; Builder always sorts before augmenting.
type Builder[P Pos, I any] struct {
	begOf func(I) P
	endOf func(I) P
	buf   []I
	cfg   builderConfig[P]
}

// NewBuilder creates a Builder for items of type I positioned by
// begOf/endOf. Both accessors must be pure and must satisfy
// beg(item) <= end(item); see WithStrictValidation to turn a
// violation into an error rather than undefined behavior.
func NewBuilder[P Pos, I any](begOf, endOf func(I) P, opts ...BuilderOption[P]) *Builder[P, I] {
	cfg := defaultBuilderConfig[P]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder[P, I]{begOf: begOf, endOf: endOf, cfg: cfg}
}

// Add appends a single item to the build buffer.
func (b *Builder[P, I]) Add(item I) {
	b.buf = append(b.buf, item)
}

// AddRange appends every item in items, in order.
func (b *Builder[P, I]) AddRange(items []I) {
	b.buf = append(b.buf, items...)
}

// Build consumes the buffer and returns an IIT. The builder is left
// empty and ready for reuse.
func (b *Builder[P, I]) Build() (*IIT[P, I], error) {
	nodes, err := b.sortedNodes()
	if err != nil {
		return nil, err
	}
	root, rootLevel, _ := rootGeometry(len(nodes))
	augmentInside(nodes, root, rootLevel)
	return &IIT[P, I]{
		nodes:     nodes,
		root:      root,
		rootLevel: rootLevel,
	}, nil
}

// BuildII consumes the buffer and returns an IITII trained against
// max(1, domains) domains. The builder is left empty and ready for
// reuse.
func (b *Builder[P, I]) BuildII(domains uint) (*IITII[P, I], error) {
	nodes, err := b.sortedNodes()
	if err != nil {
		return nil, err
	}
	if domains < 1 {
		domains = 1
	}
	root, rootLevel, _ := rootGeometry(len(nodes))
	augmentInside(nodes, root, rootLevel)

	t := &IITII[P, I]{
		nodes:     nodes,
		root:      root,
		rootLevel: rootLevel,
		domains:   domains,
	}
	if len(nodes) > 0 {
		t.minBeg = nodes[0].beg()
		t.domainSize = domainWidth(t.minBeg, nodes[len(nodes)-1].beg(), domains)
		augmentOutside(nodes)
		t.parameters = train(nodes, rootLevel, domains, t.minBeg, t.domainSize, b.cfg.trainLevel, b.cfg.logger)
	} else {
		t.parameters = make([]float32, domains*3)
		for i := range t.parameters {
			t.parameters[i] = nan32
		}
	}
	return t, nil
}

// sortedNodes drains the buffer into a freshly sorted, beg/end-cached
// node slice, validating accessors first if strict validation is on.
func (b *Builder[P, I]) sortedNodes() ([]node[P, I], error) {
	if b.cfg.strict {
		for i, item := range b.buf {
			if b.begOf(item) > b.endOf(item) {
				b.buf = nil
				return nil, newInvalidIntervalError(i)
			}
		}
	}

	nodes := make([]node[P, I], len(b.buf))
	for i, item := range b.buf {
		beg, end := b.begOf(item), b.endOf(item)
		nodes[i] = node[P, I]{item: item, begCache: beg, endCache: end, insideMaxEnd: end}
	}
	b.buf = nil

	sort.Slice(nodes, func(i, j int) bool { return less(&nodes[i], &nodes[j]) })
	return nodes, nil
}
