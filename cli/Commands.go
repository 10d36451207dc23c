package cli

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gymenv/environment/gym"
	"github.com/samuelfneumann/gymenv/environment/gym/gymhttp"
	"github.com/samuelfneumann/gymenv/environment/registry"
	"github.com/samuelfneumann/gymenv/experiment/trackers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Print the action and observation spaces of an environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, release, err := newEnv()
		if err != nil {
			return err
		}
		defer release()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "environment:       %s\n", viper.GetString(keyEnv))
		fmt.Fprintf(out, "action space:      %d\n", env.ActionSpace())
		fmt.Fprintf(out, "observation space: %v\n", env.ObservationSpace())
		return nil
	},
}

var rolloutCmd = &cobra.Command{
	Use:   "rollout",
	Short: "Run a uniform random policy in an environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, release, err := newEnv()
		if err != nil {
			return err
		}
		defer release()

		returns := trackers.NewReturn()
		lengths := trackers.NewEpisodeLength()
		err = rollout(env, viper.GetInt(keySteps), viper.GetUint64(keySeed),
			returns, lengths)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		episodeReturns, episodeLengths := returns.Data(), lengths.Data()
		fmt.Fprintf(out, "episodes: %d\n", len(episodeReturns))
		for i := range episodeReturns {
			fmt.Fprintf(out, "episode %d: return %v, length %v\n", i,
				episodeReturns[i], episodeLengths[i])
		}

		if filename := viper.GetString(keyReturnsFile); filename != "" {
			if err := returns.Save(filename); err != nil {
				return err
			}
			logger.Info("saved returns", zap.String("file", filename))
		}
		return nil
	},
}

// rollout takes steps uniform random actions in env, starting a new
// episode whenever one ends, and tracks every step
func rollout(env *gym.Env, steps int, seed uint64,
	track ...trackers.Tracker) error {
	if steps < 0 {
		return errors.Errorf("rollout: steps must be non-negative, have %d",
			steps)
	}
	rng := rand.New(rand.NewSource(seed))

	if _, err := env.Reset(); err != nil {
		return errors.Wrap(err, "rollout")
	}
	episode := 0
	for i := 0; i < steps; i++ {
		step, err := env.Step(rng.Intn(env.ActionSpace()))
		if err != nil {
			return errors.Wrap(err, "rollout")
		}
		for _, t := range track {
			t.Track(step)
		}

		if step.Last() {
			logger.Debug("episode complete", zap.Int("episode", episode),
				zap.Int("step", i+1))
			episode++
			if _, err := env.Reset(); err != nil {
				return errors.Wrap(err, "rollout")
			}
		}
	}
	return nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the environments of a runtime over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString(keyBackend) == backendHTTP {
			return errors.New("serve: cannot serve the http backend")
		}
		rt, release, err := newRuntime()
		if err != nil {
			return err
		}
		defer release()

		server := gymhttp.NewServer(rt, gymhttp.WithLogger(logger))

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-stop
			logger.Info("shutting down")
			if err := server.Shutdown(); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
			}
		}()

		return server.ListenAndServe(viper.GetString(keyListen))
	},
}

var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "List the environments of a runtime",
	Long: "List the environments of a runtime. The local backend lists " +
		"the environments that can be made, and the http backend lists " +
		"the environment instances running on the server.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, release, err := newRuntime()
		if err != nil {
			return err
		}
		defer release()

		out := cmd.OutOrStdout()
		switch r := rt.(type) {
		case *registry.Registry:
			for _, name := range r.Names() {
				fmt.Fprintln(out, name)
			}

		case *gymhttp.Client:
			instances, err := r.List()
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(instances))
			for id := range instances {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Fprintf(out, "%s\t%s\n", id, instances[id])
			}

		default:
			return errors.Errorf("envs: backend %q cannot list environments",
				viper.GetString(keyBackend))
		}
		return nil
	},
}

func init() {
	rolloutCmd.Flags().Int(keySteps, 1000, "number of steps to take")
	rolloutCmd.Flags().Uint64(keySeed, 0, "seed of the random policy")
	rolloutCmd.Flags().String(keyReturnsFile, "", "file to save episodic "+
		"returns to")
	for _, key := range []string{keySteps, keySeed, keyReturnsFile} {
		_ = viper.BindPFlag(key, rolloutCmd.Flags().Lookup(key))
	}

	serveCmd.Flags().String(keyListen, "127.0.0.1:5000", "address to "+
		"listen on")
	_ = viper.BindPFlag(keyListen, serveCmd.Flags().Lookup(keyListen))
}
