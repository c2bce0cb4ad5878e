package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensagent/app/bootstrap"
	"github.com/x-xyz/ensagent/base/config"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/delivery"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/domain/registration"
	names_usecase "github.com/x-xyz/ensagent/stores/ens/usecase"
)

// offline marks commands that never touch a node or a session store
const offline = "offline"

// services is what the commands run against
type services struct {
	names        ens.NamesUseCase
	registration registration.UseCase
}

type buildFunc func(c ctx.Ctx, v *viper.Viper) (*services, error)

func defaultBuild(c ctx.Ctx, v *viper.Viper) (*services, error) {
	deps, err := bootstrap.Build(c, v)
	if err != nil {
		return nil, err
	}
	return &services{names: deps.Names, registration: deps.Registration}, nil
}

type cli struct {
	build    buildFunc
	cfgFile  string
	network  string
	store    string
	logLevel string

	c   ctx.Ctx
	svc *services
}

func newRootCmd(build buildFunc) *cobra.Command {
	app := &cli{build: build, c: ctx.Background()}

	root := &cobra.Command{
		Use:   "enscli",
		Short: "Build unsigned ENS transactions and drive commit-reveal registrations",
		Long: `enscli prints JSON for every command. Transactions are never signed or sent,
submit the printed tx with a wallet.

Registration is commit, wait, register. With the memory session store the three steps
must run in one process, use "commit --wait --register".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.init,
	}
	fs := root.PersistentFlags()
	fs.StringVarP(&app.cfgFile, "config", "c", config.DefaultPath, "config file")
	fs.StringVarP(&app.network, "network", "n", "", "network name (default sepolia)")
	fs.StringVar(&app.store, "store", "", "session store driver: memory, redis or mongo")
	fs.StringVar(&app.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		app.checkCmd(),
		app.resolveCmd(),
		app.namehashCmd(),
		app.labelhashCmd(),
		app.deploymentsCmd(),
		app.renewCmd(),
		app.transferCmd(),
		app.primaryCmd(),
		app.recordsCmd(),
		app.subnameCmd(),
		app.commitCmd(),
		app.statusCmd(),
		app.waitCmd(),
		app.registerCmd(),
	)
	return root
}

func (a *cli) init(cmd *cobra.Command, _ []string) error {
	if parent := cmd.Context(); parent != nil {
		a.c = ctx.From(parent)
	}
	if err := log.SetLevel(a.logLevel); err != nil {
		return a.fail(cmd, err)
	}
	v, err := config.Load(a.cfgFile)
	if err != nil {
		return a.fail(cmd, err)
	}
	if _, ok := cmd.Annotations[offline]; ok {
		networks, err := config.Networks(v)
		if err != nil {
			return a.fail(cmd, err)
		}
		a.svc = &services{names: names_usecase.New(&names_usecase.NamesUseCaseCfg{Networks: networks})}
		return nil
	}
	if err := bindStore(v, cmd.Flags()); err != nil {
		return a.fail(cmd, err)
	}
	a.svc, err = a.build(a.c, v)
	if err != nil {
		return a.fail(cmd, err)
	}
	return nil
}

// bindStore lets --store override registration.sessionStore.driver
func bindStore(v *viper.Viper, fs *pflag.FlagSet) error {
	f := fs.Lookup("store")
	if f == nil || !f.Changed {
		return nil
	}
	return v.BindPFlag("registration.sessionStore.driver", f)
}

func writeJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// print writes a success result to stdout
func (a *cli) print(cmd *cobra.Command, data interface{}) error {
	return writeJSON(cmd.OutOrStdout(), data)
}

// fail writes the error body to stderr and returns err for the exit code
func (a *cli) fail(cmd *cobra.Command, err error) error {
	_ = writeJSON(cmd.ErrOrStderr(), delivery.ToErrorBody(err))
	return err
}
