// Package simulation contiene los generadores de datos simulados que alimentan
// los endpoints de analítica mientras no exista un motor real de detección o
// pronóstico. Cada función es pura respecto a sus argumentos más la fuente de
// entropía: la forma del resultado es determinista, los valores no.
package simulation

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source es la fuente de entropía que consumen los generadores.
// *rand.Rand la implementa, lo que permite sembrarla en tests.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// globalSource usa las funciones de nivel superior de math/rand/v2, seguras para goroutines.
type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Generator agrupa la fuente de entropía y el reloj usados por los generadores.
type Generator struct {
	src Source
	now func() time.Time
}

// Option configura un Generator.
type Option func(*Generator)

// WithSource reemplaza la fuente de entropía (tests).
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator construye un generador con entropía global y reloj del sistema.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{src: globalSource{}, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// intBetween devuelve un entero uniforme en [min, max).
func (g *Generator) intBetween(min, max int) int {
	return min + g.src.IntN(max-min)
}

// ratioBetween devuelve un float uniforme en [min, max) truncado a 2 decimales.
// Truncar (y no redondear) mantiene el valor dentro del intervalo semiabierto.
func (g *Generator) ratioBetween(min, max float64) float64 {
	v := min + g.src.Float64()*(max-min)
	return math.Floor(v*100) / 100
}

func pick[T any](g *Generator, items []T) T {
	return items[g.src.IntN(len(items))]
}

// dateLabel formato YYYY-MM-DD usado por las series diarias.
func dateLabel(t time.Time) string {
	return t.Format("2006-01-02")
}
