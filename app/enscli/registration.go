package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/x-xyz/ensagent/base/backoff"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/registration"
)

const (
	pollStart = 2 * time.Second
	pollLimit = 30 * time.Second
)

func (a *cli) commitCmd() *cobra.Command {
	var (
		owner     string
		duration  string
		noPrimary bool
		texts     map[string]string
		wait      bool
		register  bool
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "commit <label>",
		Short: "Start a registration, prints the commit tx and a session id",
		Long: `Start a registration of <label>.eth. Submit the printed commit tx, then run
"enscli wait <sessionId>" and "enscli register <sessionId>".

With --wait the command keeps polling until the commitment is old enough,
with --register it also prints the register tx.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setPrimary := !noPrimary
			res, err := a.svc.registration.Commit(a.c, registration.CommitParams{
				Label:      args[0],
				Owner:      owner,
				Duration:   duration,
				SetPrimary: &setPrimary,
				Network:    a.network,
				Texts:      texts,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			if err := a.print(cmd, res); err != nil {
				return err
			}
			if !wait && !register {
				return nil
			}
			if err := a.waitReady(cmd, res.SessionId, timeout); err != nil {
				return a.fail(cmd, err)
			}
			if !register {
				return nil
			}
			return a.register(cmd, res.SessionId)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&owner, "owner", "", "owner of the new name")
	fs.StringVarP(&duration, "duration", "d", "", "registration duration (default 1y)")
	fs.BoolVar(&noPrimary, "no-primary", false, "do not set the reverse record")
	fs.StringToStringVar(&texts, "text", nil, "extra text record key=value, repeatable")
	fs.BoolVar(&wait, "wait", false, "poll until the commitment can be revealed")
	fs.BoolVar(&register, "register", false, "wait, then print the register tx")
	fs.DurationVar(&timeout, "timeout", 10*time.Minute, "give up waiting after this long")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func (a *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <sessionId>",
		Short: "Print the on-chain commitment age of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.registration.Status(a.c, registration.SessionId(args[0]))
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
}

func (a *cli) waitCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "wait <sessionId>",
		Short: "Poll until the commitment of a session can be revealed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.waitReady(cmd, registration.SessionId(args[0]), timeout); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "give up after this long")
	return cmd
}

func (a *cli) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <sessionId>",
		Short: "Print the register tx of a matured session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.register(cmd, registration.SessionId(args[0]))
		},
	}
}

func (a *cli) register(cmd *cobra.Command, id registration.SessionId) error {
	res, err := a.svc.registration.Register(a.c, id)
	if err != nil {
		return a.fail(cmd, err)
	}
	return a.print(cmd, res)
}

// waitReady polls Status, sleeping the remaining seconds when the commitment is known
func (a *cli) waitReady(cmd *cobra.Command, id registration.SessionId, timeout time.Duration) error {
	c, cancel := ctx.WithTimeout(a.c, timeout)
	defer cancel()

	var last *registration.StatusResult
	b := backoff.NewExponential(pollStart, pollLimit)
	err := b.Poll(c, func() (bool, time.Duration, error) {
		res, err := a.svc.registration.Status(c, id)
		if err != nil {
			return false, 0, err
		}
		last = res
		if res.Expired {
			return false, 0, domain.NewError(domain.KindCommitmentExpired, "commitment is older than %ds, create a new commit", res.MaxCommitmentAge)
		}
		if res.Ready {
			return true, 0, nil
		}
		c.WithFields(log.Fields{
			"committed":        res.Committed,
			"remainingSeconds": res.RemainingSeconds,
		}).Info("waiting for commitment")
		if res.Committed {
			// +1 covers the next block timestamp
			return false, time.Duration(res.RemainingSeconds+1) * time.Second, nil
		}
		return false, 0, nil
	})
	if err != nil {
		if last != nil && c.Err() != nil {
			return domain.WrapError(domain.KindCommitmentTooNew, err, "gave up waiting").WithDebug(map[string]interface{}{
				"committed":        last.Committed,
				"remainingSeconds": last.RemainingSeconds,
			})
		}
		return err
	}
	return a.print(cmd, last)
}
