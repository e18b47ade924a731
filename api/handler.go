// Package api exposes the scheduling engine over HTTP. The JSON surface
// mirrors the console output: per-process results plus an aggregate
// analytics block.
package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	sim "github.com/cpusim/rrsim/sim"
)

// ScheduleRequest is the JSON body of a scheduling call.
type ScheduleRequest struct {
	TimeSlice uint32        `json:"time_slice"`
	Jobs      []sim.Process `json:"jobs"`
}

// ScheduleResponse carries per-process results sorted by arrival time plus
// run-wide aggregates.
type ScheduleResponse struct {
	TimeSlice          uint32              `json:"time_slice"`
	Results            []sim.ProcessResult `json:"results"`
	AverageWaitingTime float64             `json:"average_waiting_time"`
	AverageTurnaround  float64             `json:"average_turn_around_time"`
	CPUUtilization     float64             `json:"cpu_utilization"`
	Throughput         float64             `json:"throughput"`
	MakespanTicks      uint64              `json:"makespan_ticks"`
	IdleTicks          uint64              `json:"idle_ticks"`
}

// Server wires the fiber app, routes, and metrics together.
type Server struct {
	app     *fiber.App
	metrics *Collector
}

// NewServer builds the HTTP server with its routes registered.
func NewServer() *Server {
	s := &Server{
		app:     fiber.New(),
		metrics: NewCollector(),
	}

	api := s.app.Group("/api")
	v1 := api.Group("/v1")
	v1.Post("/rr", s.RoundRobin)

	s.app.Get("/metrics", s.metrics.Handler())
	return s
}

// App returns the underlying fiber app, used by tests to issue requests
// without a listener.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given port.
func (s *Server) Listen(port int) error {
	logrus.Infof("scheduling API listening on :%d", port)
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

// RoundRobin handles POST /api/v1/rr: parse the job set, run the engine,
// and return results with aggregates.
func (s *Server) RoundRobin(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	engine, err := sim.NewSimulator(request.Jobs, request.TimeSlice)
	if err != nil {
		if errors.Is(err, sim.ErrInvalidTimeSlice) || errors.Is(err, sim.ErrDuplicateID) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "cannot process request",
		})
	}

	results := engine.Run()
	sim.SortByArrival(results)
	m := sim.BuildMetrics(results, engine.Trace())

	s.metrics.RecordRun(len(results), m.Makespan())
	logrus.Debugf("scheduled %d jobs over %d ticks", len(results), m.Makespan())

	return ctx.JSON(ScheduleResponse{
		TimeSlice:          request.TimeSlice,
		Results:            results,
		AverageWaitingTime: m.AvgWaiting(),
		AverageTurnaround:  m.AvgTurnaround(),
		CPUUtilization:     m.Utilization(),
		Throughput:         m.Throughput(),
		MakespanTicks:      m.Makespan(),
		IdleTicks:          m.IdleTicks,
	})
}
