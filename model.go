package iitii

import (
	"math"
)

// nan32 is the float32 "no prediction" marker stored in a domain's
// parameters when its regression is rejected or never trained (§3
// invariant 4: parameters are either jointly finite and valid, or all
// NaN).
var nan32 = float32(math.NaN())

// domainWidth computes ds = 1 + floor((maxBeg-minBeg)/domains), the
// equal width of each of the domains domains partitioning
// [minBeg, maxBeg] (§4.5).
func domainWidth[P Pos](minBeg, maxBeg P, domains uint) P {
	span := float64(maxBeg) - float64(minBeg)
	return P(1 + math.Floor(span/float64(domains)))
}

// whichDomain returns which(beg): the domain index beg falls into,
// clamped to [0, domains).
func whichDomain[P Pos](beg, minBeg, domainSize P, domains uint) uint {
	if beg < minBeg {
		return 0
	}
	d := uint(float64(beg-minBeg) / float64(domainSize))
	if d >= domains {
		return domains - 1
	}
	return d
}

// trainingPoint is one (beg, offset-within-level) observation used to
// fit a domain's regression.
type trainingPoint[P Pos] struct {
	beg P
	ofs uint64
}

// train fits one linear model per domain, predicting a node's offset
// within trainLevel from its beg, and returns the row-major
// parameters array (3 floats per domain: intercept, slope, level) per
// §4.5. Rejected domains are left NaN.
func train[P Pos, I any](nodes []node[P, I], rootLevel int, domains uint, minBeg, domainSize P, trainLevel int, logger Logger) []float32 {
	parameters := make([]float32, domains*3)
	for i := range parameters {
		parameters[i] = nan32
	}

	points := make([][]trainingPoint[P], domains)
	step := rank(1) << uint(trainLevel+1)
	n := rank(len(nodes))
	var ofs uint64
	for r := (rank(1) << uint(trainLevel)) - 1; r < n; r, ofs = r+step, ofs+1 {
		d := whichDomain(nodes[r].beg(), minBeg, domainSize, domains)
		points[d] = append(points[d], trainingPoint[P]{beg: nodes[r].beg(), ofs: ofs})
	}

	threshold := float64(uint64(1) << uint(rootLevel/2))
	for d := uint(0); d < domains; d++ {
		intercept, slope, ok := regress(points[d])
		if !ok {
			continue
		}
		if math.IsNaN(intercept) || math.IsInf(intercept, 0) || math.IsNaN(slope) || math.IsInf(slope, 0) {
			continue
		}
		residual := meanAbsoluteResidual(points[d], intercept, slope)
		if residual > threshold {
			if logger != nil {
				logger.WithFields(map[string]any{
					"domain":            d,
					"points":            len(points[d]),
					"mean_abs_residual": residual,
					"threshold":         threshold,
				}).Debug("iitii: rejecting interpolation model for domain")
			}
			continue
		}
		parameters[3*d] = float32(intercept)
		parameters[3*d+1] = float32(slope)
		parameters[3*d+2] = float32(trainLevel)
	}
	return parameters
}

// regress performs ordinary least squares of ofs on beg over points,
// returning (intercept, slope, ok). ok is false when points is empty
// (no data to fit); when the x-variance is zero, (0, 0, true) is
// returned per §4.5 step 3.
func regress[P Pos](points []trainingPoint[P]) (intercept, slope float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += float64(p.beg)
		sumY += float64(p.ofs)
	}
	n := float64(len(points))
	meanX, meanY := sumX/n, sumY/n

	var cov, varX float64
	for _, p := range points {
		xErr := float64(p.beg) - meanX
		cov += xErr * (float64(p.ofs) - meanY)
		varX += xErr * xErr
	}
	if varX == 0 {
		return 0, 0, true
	}
	m := cov / varX
	b := meanY - m*meanX
	return b, m, true
}

// meanAbsoluteResidual computes the mean absolute residual of the
// model (intercept, slope) against points (§4.5 step 4).
func meanAbsoluteResidual[P Pos](points []trainingPoint[P], intercept, slope float64) float64 {
	if len(points) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, p := range points {
		y := float64(p.ofs)
		fx := slope*float64(p.beg) + intercept
		if y >= fx {
			sum += y - fx
		} else {
			sum += fx - y
		}
	}
	return sum / float64(len(points))
}

// predictLeaf predicts the leaf rank a query for qbeg should begin
// climbing from, or (noRank, false) if the domain's model was
// rejected (§4.5 prediction steps).
func predictLeaf[P Pos](parameters []float32, minBeg, domainSize P, domains uint, n int, qbeg P) (rank, bool) {
	d := whichDomain(qbeg, minBeg, domainSize, domains)
	lvF := parameters[3*d+2]
	if lvF != lvF { // NaN check without importing math.IsNaN at the call site
		return noRank, false
	}
	lv := uint(lvF)

	ofsF := float64(parameters[3*d]) + float64(parameters[3*d+1])*float64(qbeg)
	if ofsF < 0 {
		ofsF = 0
	}
	ofs := uint64(math.Round(ofsF))

	r := (rank(1) << lv) * (2*rank(ofs) + 1) - 1
	if r >= rank(n) {
		return rightmostRealLeaf(n), true
	}
	return r, true
}
