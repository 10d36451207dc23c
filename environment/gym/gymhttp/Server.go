package gymhttp

import (
	"encoding/json"
	"math"
	"sync"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gymenv/environment/gym"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

type instance struct {
	envID  string
	handle gym.Handle
}

// Server serves the environments of a gym.Runtime over HTTP. All calls
// into the runtime are serialised through a gym.Gateway. By default
// the Server uses its own Gateway, so that a gym.Env in the same
// process may use a Client of this Server without deadlocking. Use
// WithGateway(gym.DefaultGateway()) when the served runtime is also
// used directly in the same process.
type Server struct {
	runtime gym.Runtime
	gateway *gym.Gateway
	logger  *zap.Logger
	router  *router.Router
	server  *fasthttp.Server

	mu        sync.Mutex
	instances map[string]*instance
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithGateway sets the Gateway through which a Server calls its runtime
func WithGateway(g *gym.Gateway) ServerOption {
	return func(s *Server) {
		s.gateway = g
	}
}

// WithLogger sets the logger of a Server. By default nothing is logged.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer returns a new Server for rt
func NewServer(rt gym.Runtime, opts ...ServerOption) *Server {
	s := &Server{
		runtime:   rt,
		gateway:   gym.NewGateway(),
		logger:    zap.NewNop(),
		instances: make(map[string]*instance),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := router.New()
	r.POST(envsPath, s.create)
	r.GET(envsPath, s.list)

	prefix := envsPath + "{" + instanceParam + "}"
	r.POST(prefix+resetPath, s.reset)
	r.POST(prefix+stepPath, s.step)
	r.POST(prefix+seedPath, s.seed)
	r.POST(prefix+closePath, s.close)
	r.GET(prefix+actionSpacePath, s.actionSpace)
	r.GET(prefix+observationSpacePath, s.observationSpace)
	s.router = r

	s.server = &fasthttp.Server{
		Handler: r.Handler,
		Name:    "gymenv",
	}
	return s
}

// Handler returns the request handler of the Server
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.router.Handler
}

// ListenAndServe serves HTTP requests on addr until Shutdown is called
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("serving environments", zap.String("address", addr))
	return s.server.ListenAndServe(addr)
}

// Shutdown gracefully stops the Server
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) create(ctx *fasthttp.RequestCtx) {
	var req createRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err,
			"create: malformed request"))
		return
	}

	var handle gym.Handle
	err := s.gateway.Do(func() error {
		var err error
		handle, err = s.runtime.Make(req.EnvID)
		return err
	})
	if err == nil && handle == nil {
		err = errors.Errorf("runtime returned no environment for %q",
			req.EnvID)
	}
	if err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err, "create"))
		return
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.instances[id] = &instance{envID: req.EnvID, handle: handle}
	s.mu.Unlock()

	s.logger.Debug("created environment", zap.String("env_id", req.EnvID),
		zap.String("instance_id", id))
	s.respond(ctx, createResponse{InstanceID: id})
}

func (s *Server) list(ctx *fasthttp.RequestCtx) {
	s.mu.Lock()
	envs := make(map[string]string, len(s.instances))
	for id, inst := range s.instances {
		envs[id] = inst.envID
	}
	s.mu.Unlock()

	s.respond(ctx, listResponse{AllEnvs: envs})
}

func (s *Server) reset(ctx *fasthttp.RequestCtx) {
	inst, ok := s.lookup(ctx)
	if !ok {
		return
	}

	var raw interface{}
	if err := s.gateway.Do(func() error {
		var err error
		raw, err = inst.handle.Reset()
		return err
	}); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err, "reset"))
		return
	}

	obs, err := gym.Float64s(raw)
	if err != nil {
		s.fail(ctx, fasthttp.StatusInternalServerError, errors.Wrap(err,
			"reset: observation"))
		return
	}
	s.respond(ctx, resetResponse{Observation: obs})
}

func (s *Server) step(ctx *fasthttp.RequestCtx) {
	inst, ok := s.lookup(ctx)
	if !ok {
		return
	}

	var req stepRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err,
			"step: malformed request"))
		return
	}

	var raw interface{}
	if err := s.gateway.Do(func() error {
		var err error
		raw, err = inst.handle.Step(req.Action)
		return err
	}); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err, "step"))
		return
	}

	resp, err := toStepResponse(raw)
	if err != nil {
		s.fail(ctx, fasthttp.StatusInternalServerError, errors.Wrap(err,
			"step"))
		return
	}
	s.respond(ctx, resp)
}

func (s *Server) seed(ctx *fasthttp.RequestCtx) {
	inst, ok := s.lookup(ctx)
	if !ok {
		return
	}

	var req seedRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err,
			"seed: malformed request"))
		return
	}

	if err := s.gateway.Do(func() error {
		return inst.handle.Seed(req.Seed)
	}); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err, "seed"))
		return
	}
	s.respond(ctx, struct{}{})
}

func (s *Server) close(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue(instanceParam).(string)

	s.mu.Lock()
	inst, ok := s.instances[id]
	delete(s.instances, id)
	s.mu.Unlock()

	if !ok {
		s.fail(ctx, fasthttp.StatusNotFound, errors.Errorf("close: no "+
			"instance %q", id))
		return
	}

	if closer, ok := inst.handle.(interface{ Close() error }); ok {
		if err := s.gateway.Do(closer.Close); err != nil {
			s.logger.Warn("could not close environment",
				zap.String("instance_id", id), zap.Error(err))
		}
	}
	s.logger.Debug("closed environment", zap.String("instance_id", id))
	s.respond(ctx, struct{}{})
}

func (s *Server) actionSpace(ctx *fasthttp.RequestCtx) {
	inst, ok := s.lookup(ctx)
	if !ok {
		return
	}

	var space interface{}
	if err := s.gateway.Do(func() error {
		var err error
		space, err = inst.handle.ActionSpace()
		return err
	}); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err,
			"action space"))
		return
	}

	n, err := gym.ActionCount(space)
	if err != nil {
		s.fail(ctx, fasthttp.StatusInternalServerError, errors.Wrap(err,
			"action space"))
		return
	}
	s.respond(ctx, spaceResponse{Info: spaceInfo{Name: "Discrete", N: &n}})
}

func (s *Server) observationSpace(ctx *fasthttp.RequestCtx) {
	inst, ok := s.lookup(ctx)
	if !ok {
		return
	}

	var space interface{}
	if err := s.gateway.Do(func() error {
		var err error
		space, err = inst.handle.ObservationSpace()
		return err
	}); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, errors.Wrap(err,
			"observation space"))
		return
	}

	shape, err := gym.ObservationShape(space)
	if err != nil {
		s.fail(ctx, fasthttp.StatusInternalServerError, errors.Wrap(err,
			"observation space"))
		return
	}

	// JSON has no infinities, so unbounded boxes are sent without bounds
	info := spaceInfo{Name: "Box", Shape: shape}
	if box, ok := space.(gym.Box); ok && finite(box.Low) && finite(box.High) {
		info.Low, info.High = box.Low, box.High
	}
	s.respond(ctx, spaceResponse{Info: info})
}

// lookup returns the instance named in the request path, responding
// with 404 if there is none
func (s *Server) lookup(ctx *fasthttp.RequestCtx) (*instance, bool) {
	id, _ := ctx.UserValue(instanceParam).(string)

	s.mu.Lock()
	inst, ok := s.instances[id]
	s.mu.Unlock()

	if !ok {
		s.fail(ctx, fasthttp.StatusNotFound, errors.Errorf("no instance %q",
			id))
	}
	return inst, ok
}

func (s *Server) respond(ctx *fasthttp.RequestCtx, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.fail(ctx, fasthttp.StatusInternalServerError, errors.Wrap(err,
			"could not encode response"))
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(data)
}

func (s *Server) fail(ctx *fasthttp.RequestCtx, status int, err error) {
	s.logger.Warn("request failed", zap.ByteString("path", ctx.Path()),
		zap.Int("status", status), zap.Error(err))

	data, _ := json.Marshal(errorResponse{Message: err.Error()})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func finite(v []float64) bool {
	for _, f := range v {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// toStepResponse converts a step tuple into its wire form
func toStepResponse(raw interface{}) (stepResponse, error) {
	rawObs, rawReward, rawDone, err := gym.StepTuple(raw)
	if err != nil {
		return stepResponse{}, err
	}

	var resp stepResponse
	if resp.Observation, err = gym.Float64s(rawObs); err != nil {
		return stepResponse{}, errors.Wrap(err, "observation")
	}
	if resp.Reward, err = gym.Float64(rawReward); err != nil {
		return stepResponse{}, errors.Wrap(err, "reward")
	}
	if resp.Done, err = gym.Bool(rawDone); err != nil {
		return stepResponse{}, errors.Wrap(err, "done")
	}

	if tuple := raw.([]interface{}); len(tuple) > gym.StepTupleLen {
		resp.Info = tuple[gym.StepTupleLen]
	} else {
		resp.Info = map[string]interface{}{}
	}
	return resp, nil
}
