// Package gymhttp serves and consumes environments over the OpenAI
// gym-http-api protocol.
//
// A Server exposes any gym.Runtime over HTTP. A Client is a gym.Runtime
// which creates environments on a remote Server, so that
//
//	client, _ := gymhttp.NewClient("http://127.0.0.1:5000")
//	env, err := gym.New(client, "CartPole-v0")
//
// adapts an environment running in another process. Besides the
// gym-http-api routes, Server implements
//
//	POST /v1/envs/{instance_id}/seed/   {"seed": int}
//
// which gym.New requires.
package gymhttp

const (
	envsPath             = "/v1/envs/"
	instanceParam        = "instance_id"
	resetPath            = "/reset/"
	stepPath             = "/step/"
	seedPath             = "/seed/"
	closePath            = "/close/"
	actionSpacePath      = "/action_space/"
	observationSpacePath = "/observation_space/"
)

type createRequest struct {
	EnvID string `json:"env_id"`
}

type createResponse struct {
	InstanceID string `json:"instance_id"`
}

type listResponse struct {
	AllEnvs map[string]string `json:"all_envs"`
}

type seedRequest struct {
	Seed int `json:"seed"`
}

type stepRequest struct {
	Action int  `json:"action"`
	Render bool `json:"render,omitempty"`
}

type resetResponse struct {
	Observation []float64 `json:"observation"`
}

type stepResponse struct {
	Observation []float64   `json:"observation"`
	Reward      float64     `json:"reward"`
	Done        bool        `json:"done"`
	Info        interface{} `json:"info"`
}

type spaceInfo struct {
	Name  string    `json:"name"`
	N     *int      `json:"n,omitempty"`
	Shape []int     `json:"shape"`
	Low   []float64 `json:"low,omitempty"`
	High  []float64 `json:"high,omitempty"`
}

type spaceResponse struct {
	Info spaceInfo `json:"info"`
}

type errorResponse struct {
	Message string `json:"message"`
}
