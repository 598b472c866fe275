package scenario

// Config holds settings for running a scenario. The defaults in cmd match the
// docker-compose topology: the agent published on localhost:8080, redis on
// localhost:6379, both registering under the same scope the agent is configured
// with.
type Config struct {
	AgentBaseURL string
	RedisAddr    string
	Scope        string
	// ComposePath is the path to docker-compose.yml (used by scenarios that stop
	// and start the backend).
	ComposePath string
}
