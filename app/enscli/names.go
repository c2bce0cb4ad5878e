package main

import (
	"github.com/spf13/cobra"

	"github.com/x-xyz/ensagent/domain/ens"
)

func (a *cli) checkCmd() *cobra.Command {
	var duration string
	cmd := &cobra.Command{
		Use:   "check <label>",
		Short: "Check availability and rent price of <label>.eth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.Check(a.c, args[0], duration, a.network)
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().StringVarP(&duration, "duration", "d", "", "registration duration, e.g. 1y, 6m, 30d or seconds (default 1y)")
	return cmd
}

func (a *cli) resolveCmd() *cobra.Command {
	var (
		txt         string
		contenthash bool
	)
	cmd := &cobra.Command{
		Use:   "resolve <name|address>",
		Short: "Resolve a name to its address, text record or contenthash, or an address to its primary name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.Resolve(a.c, ens.ResolveParams{
				Input:       args[0],
				Network:     a.network,
				Text:        txt,
				Contenthash: contenthash,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().StringVar(&txt, "txt", "", "text record key, avatar also resolves the image url")
	cmd.Flags().BoolVar(&contenthash, "contenthash", false, "read the contenthash record")
	return cmd
}

func (a *cli) namehashCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "namehash <name>",
		Short:       "Print the EIP-137 namehash of a normalized name",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offline: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.Namehash(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
}

func (a *cli) labelhashCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "labelhash <label>",
		Short:       "Print keccak256 of a normalized label",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offline: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.Labelhash(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
}

func (a *cli) deploymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "deployments",
		Short:       "Print the ENS contract addresses, all networks unless --network is set",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{offline: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			all := a.svc.names.Deployments()
			if a.network == "" {
				return a.print(cmd, all)
			}
			cfg, err := all.Get(a.network)
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, cfg)
		},
	}
}

func (a *cli) renewCmd() *cobra.Command {
	var duration string
	cmd := &cobra.Command{
		Use:   "renew <label>",
		Short: "Build an unsigned renew transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.Renew(a.c, ens.RenewParams{
				Label:    args[0],
				Duration: duration,
				Network:  a.network,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().StringVarP(&duration, "duration", "d", "", "renewal duration (default 1y)")
	return cmd
}

func (a *cli) transferCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "transfer <label>",
		Short: "Build an unsigned safeTransferFrom of the .eth registrar token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.Transfer(a.c, ens.TransferParams{
				Label:   args[0],
				From:    from,
				To:      to,
				Network: a.network,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "current owner")
	cmd.Flags().StringVar(&to, "to", "", "new owner")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *cli) primaryCmd() *cobra.Command {
	var address, owner string
	cmd := &cobra.Command{
		Use:   "primary <name>",
		Short: "Build an unsigned setNameForAddr transaction on the reverse registrar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.SetPrimary(a.c, ens.PrimaryParams{
				Name:    args[0],
				Address: address,
				Owner:   owner,
				Network: a.network,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "address the reverse record is set for")
	cmd.Flags().StringVar(&owner, "owner", "", "owner of the reverse node (default --address)")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func (a *cli) recordsCmd() *cobra.Command {
	var address, resolver string
	texts := map[string]string{}
	cmd := &cobra.Command{
		Use:   "records <name>",
		Short: "Build an unsigned resolver transaction setting text records and the address, batched by multicall",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.names.SetRecords(a.c, ens.RecordsParams{
				Name:     args[0],
				Texts:    texts,
				Address:  address,
				Resolver: resolver,
				Network:  a.network,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().StringToStringVar(&texts, "text", texts, "text record as key=value, repeatable")
	cmd.Flags().StringVar(&address, "address", "", "ETH address record")
	cmd.Flags().StringVar(&resolver, "resolver", "", "resolver to write to (default the network's public resolver)")
	return cmd
}

func (a *cli) subnameCmd() *cobra.Command {
	var parent, owner, address string
	var noReverse bool
	cmd := &cobra.Command{
		Use:   "subname <label>",
		Short: "Build the unsigned transactions creating a subname under a parent you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ens.SubnameParams{
				Label:   args[0],
				Parent:  parent,
				Owner:   owner,
				Address: address,
				Network: a.network,
			}
			if noReverse {
				reverse := false
				p.Reverse = &reverse
			}
			res, err := a.svc.names.CreateSubname(a.c, p)
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().StringVar(&parent, "parent", ens.TLD, "parent name")
	cmd.Flags().StringVar(&owner, "owner", "", "owner of the new subname")
	cmd.Flags().StringVar(&address, "address", "", "address record of the subname (default --owner)")
	cmd.Flags().BoolVar(&noReverse, "no-reverse", false, "skip the reverse record transaction")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
