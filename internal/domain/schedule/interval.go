package schedule

import "time"

// ===============================
// Interval math
// ===============================
//
// Todos os intervalos do domínio são semiabertos [start, end): extremos
// encostados não contam como sobreposição. Qualquer comparação de
// intervalos no resto do código passa por aqui.

// Overlaps informa se [aStart, aEnd) e [bStart, bEnd) se sobrepõem.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains informa se [innerStart, innerEnd) cabe inteiro em [outerStart, outerEnd).
func Contains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !innerStart.Before(outerStart) && !innerEnd.After(outerEnd)
}

// RangeOverlaps é Overlaps para horários do dia.
func RangeOverlaps(a, b ClockRange) bool {
	return a.Start < b.End && b.Start < a.End
}

// RangeContains é Contains para horários do dia.
func RangeContains(outer, inner ClockRange) bool {
	return inner.Start >= outer.Start && inner.End <= outer.End
}
