package observability

import (
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "micromouse"

// Metrics holds the collectors fed by navigator hooks.
type Metrics struct {
	Turns       *prometheus.CounterVec
	Moves       *prometheus.CounterVec
	DeadEnds    prometheus.Counter
	Goals       prometheus.Counter
	Position    *prometheus.GaugeVec
	TicksToGoal prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Total number of committed turns.",
		}, []string{"direction"}),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Total number of advance attempts by outcome.",
		}, []string{"outcome"}),
		DeadEnds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dead_ends_total",
			Help:      "Total number of dead ends met.",
		}),
		Goals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goals_total",
			Help:      "Total number of runs that reached the center.",
		}),
		Position: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "position",
			Help:      "Current tracked cell of the mouse.",
		}, []string{"axis"}),
		TicksToGoal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ticks_to_goal",
			Help:      "Ticks a run needed to reach the center.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.Turns, m.Moves, m.DeadEnds, m.Goals, m.Position, m.TicksToGoal} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn: func(e *domain.TurnEvent) {
			m.Turns.WithLabelValues(e.Turn.String()).Inc()
		},
		OnMove: func(e *domain.MoveEvent) {
			if e.Blocked {
				m.Moves.WithLabelValues("blocked").Inc()
				return
			}
			m.Moves.WithLabelValues("ok").Inc()
			m.Position.WithLabelValues("x").Set(float64(e.To.X))
			m.Position.WithLabelValues("y").Set(float64(e.To.Y))
		},
		OnDeadEnd: func(*domain.DeadEndEvent) {
			m.DeadEnds.Inc()
		},
		OnGoal: func(e *domain.GoalEvent) {
			m.Goals.Inc()
			m.TicksToGoal.Observe(float64(e.Ticks))
		},
	}
}
