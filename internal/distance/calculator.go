package distance

import (
	"log/slog"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/UnknownOlympus/mesafe/internal/metrics"
	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/UnknownOlympus/mesafe/internal/places"
	"github.com/patrickmn/go-cache"
)

// Options configures a Calculator.
type Options struct {
	Match    MatchMode        // Match selects exact or folded name matching. Empty means exact.
	CacheTTL time.Duration    // CacheTTL enables pair caching when positive.
	Metrics  *metrics.Metrics // Metrics is optional.
	Logger   *slog.Logger     // Logger defaults to slog.Default().
}

// snapshot is the table in use together with the data derived from it.
type snapshot struct {
	gen    uint64
	table  *places.Table
	folded map[string]string
}

// Calculator resolves place names against a reference table and computes the
// great-circle distance between them. It is safe for concurrent use; the table
// can be replaced at any time with SetTable.
type Calculator struct {
	state   atomic.Pointer[snapshot]
	setMu   sync.Mutex // serialises SetTable so the newest table is the one left installed
	gen     atomic.Uint64
	match   MatchMode
	cache   *cache.Cache
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewCalculator creates a Calculator over table.
func NewCalculator(table *places.Table, opts Options) *Calculator {
	if opts.Match == "" {
		opts.Match = MatchExact
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	calc := &Calculator{
		match:   opts.Match,
		metrics: opts.Metrics,
		log:     opts.Logger,
	}
	if opts.CacheTTL > 0 {
		calc.cache = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}
	calc.SetTable(table)

	return calc
}

// SetTable atomically replaces the reference table and drops cached distances.
// Concurrent calls are applied one at a time; the last one to return wins.
func (c *Calculator) SetTable(table *places.Table) {
	c.setMu.Lock()
	defer c.setMu.Unlock()

	snap := &snapshot{gen: c.gen.Add(1), table: table}
	if c.match == MatchFolded {
		snap.folded = foldIndex(table)
	}
	c.state.Store(snap)

	if c.cache != nil {
		c.cache.Flush()
	}
	if c.metrics != nil {
		c.metrics.PlacesLoaded.Set(float64(table.Len()))
	}

	c.log.Info("Reference table installed", "places", table.Len(), "match", string(c.match))
}

// Table returns the table currently in use.
func (c *Calculator) Table() *places.Table {
	return c.state.Load().table
}

// Distance returns the distance in kilometers between two places.
// The error is an *UnknownPlaceError when either name is not in the table.
func (c *Calculator) Distance(fromName, toName string) (float64, error) {
	result := c.Calculate(fromName, toName)

	return result.Kilometers, result.Err
}

// Calculate answers a query for two raw user inputs.
func (c *Calculator) Calculate(fromName, toName string) models.DistanceResult {
	return c.Query(models.DistanceQuery{From: fromName, To: toName})
}

// Query answers query. It never panics, whatever the input strings are;
// unknown names are reported through the result's Err.
func (c *Calculator) Query(query models.DistanceQuery) models.DistanceResult {
	snap := c.state.Load()
	result := models.DistanceResult{Query: query}

	from, okFrom := c.resolve(snap, query.From)
	to, okTo := c.resolve(snap, query.To)
	if !okFrom || !okTo {
		result.Err = unknownPlaces(query, okFrom, okTo)
		c.observe(metrics.OutcomeUnknownPlace)
		return result
	}

	result.From, result.To = from.Name, to.Name
	if from.Name == to.Name {
		c.observe(metrics.OutcomeSamePlace)
		return result
	}

	result.Kilometers = c.pairDistance(snap.gen, from, to)
	c.observe(metrics.OutcomeOK)

	return result
}

func (c *Calculator) resolve(snap *snapshot, name string) (models.PlaceCoordinate, bool) {
	if place, ok := snap.table.Lookup(name); ok {
		return place, true
	}
	if snap.folded == nil {
		return models.PlaceCoordinate{}, false
	}
	canonical, ok := snap.folded[Fold(name)]
	if !ok {
		return models.PlaceCoordinate{}, false
	}

	return snap.table.Lookup(canonical)
}

func (c *Calculator) pairDistance(gen uint64, from, to models.PlaceCoordinate) float64 {
	if c.cache == nil {
		return Haversine(from.Coordinates(), to.Coordinates())
	}

	key := pairKey(gen, from.Name, to.Name)
	if cached, found := c.cache.Get(key); found {
		if c.metrics != nil {
			c.metrics.CacheHits.Inc()
		}
		return cached.(float64)
	}

	km := Haversine(from.Coordinates(), to.Coordinates())
	c.cache.Set(key, km, cache.DefaultExpiration)

	return km
}

// pairKey orders the names so that A->B and B->A share an entry.
func pairKey(gen uint64, a, b string) string {
	if b < a {
		a, b = b, a
	}

	return strconv.FormatUint(gen, 10) + "\x00" + a + "\x00" + b
}

func unknownPlaces(query models.DistanceQuery, okFrom, okTo bool) *UnknownPlaceError {
	names := make([]string, 0, 2)
	if !okFrom {
		names = append(names, query.From)
	}
	if !okTo && (okFrom || query.To != query.From) {
		names = append(names, query.To)
	}

	return &UnknownPlaceError{Names: names}
}

func (c *Calculator) observe(outcome string) {
	if c.metrics != nil {
		c.metrics.DistanceQueries.WithLabelValues(outcome).Inc()
	}
}

// Matrix holds the rounded distances between every pair of places of a table.
// Km[i][j] is the distance between Names[i] and Names[j].
type Matrix struct {
	Names []string
	Km    [][]int
}

// Matrix computes the distance matrix of the current table.
func (c *Calculator) Matrix() Matrix {
	table := c.state.Load().table
	entries := table.Places()

	matrix := Matrix{Names: table.Names(), Km: make([][]int, len(entries))}
	for i := range entries {
		matrix.Km[i] = make([]int, len(entries))
	}
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			km := int(math.Round(Haversine(entries[i].Coordinates(), entries[j].Coordinates())))
			matrix.Km[i][j] = km
			matrix.Km[j][i] = km
		}
	}

	return matrix
}
