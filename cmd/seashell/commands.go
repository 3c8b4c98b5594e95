package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gulfstream/seashell/common/types"
	"github.com/gulfstream/seashell/metrics"
	"github.com/gulfstream/seashell/signing"
)

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "print the balance of an address, the key file account by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var addr types.Address
			if len(args) == 1 {
				var err error
				if addr, err = types.StringToAddress(args[0]); err != nil {
					return err
				}
			} else {
				signer, err := a.signer()
				if err != nil {
					return err
				}
				addr = signer.PublicKey()
			}
			svc, _, closer, err := a.service(false)
			if err != nil {
				return err
			}
			defer closer()
			balance, err := svc.Balance(cmd.Context(), addr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", addr, balance)
			return nil
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "print every transaction known to the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, closer, err := a.service(false)
			if err != nil {
				return err
			}
			defer closer()
			entries, err := svc.History(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, entry := range entries {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printEntry(out, entry)
			}
			return nil
		},
	}
}

func (a *app) txCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tx <id>",
		Short: "print the transaction with the given base58 signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, closer, err := a.service(false)
			if err != nil {
				return err
			}
			defer closer()
			entry, err := svc.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func (a *app) latestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "print the latest block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := a.dial()
			if err != nil {
				return err
			}
			defer cl.Close()
			block, err := cl.GetLatestBlock(cmd.Context())
			if err != nil {
				return err
			}
			printBlock(cmd.OutOrStdout(), block)
			return nil
		},
	}
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "poll the latest block and print every new one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := a.dial()
			if err != nil {
				return err
			}
			defer cl.Close()
			w := a.watcher(cl)
			blocks := w.Subscribe()

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.Go(func() error { return w.Run(ctx) })
			if a.conf.MetricsPort > 0 {
				eg.Go(func() error { return metrics.Serve(ctx, a.logger, a.conf.MetricsPort) })
			}
			eg.Go(func() error {
				for block := range blocks {
					printBlock(cmd.OutOrStdout(), block)
				}
				return nil
			})
			return eg.Wait()
		},
	}
}

func (a *app) transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <to> <amount>",
		Short: "send Seashell from the key file account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := types.StringToAddress(args[0])
			if err != nil {
				return fmt.Errorf("recipient: %w", err)
			}
			amount, err := types.ParseAmount(args[1])
			if err != nil {
				return err
			}
			svc, w, closer, err := a.service(true)
			if err != nil {
				return err
			}
			defer closer()
			if err := w.Poll(cmd.Context()); err != nil {
				return fmt.Errorf("latest block: %w", err)
			}
			tx, ack, err := svc.Transfer(cmd.Context(), to, amount)
			if err != nil {
				return err
			}
			printSubmitted(cmd, tx, ack)
			return nil
		},
	}
}

func (a *app) mintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint <amount>",
		Short: "request new Seashell for the key file account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := types.ParseAmount(args[0])
			if err != nil {
				return err
			}
			svc, w, closer, err := a.service(true)
			if err != nil {
				return err
			}
			defer closer()
			if err := w.Poll(cmd.Context()); err != nil {
				return fmt.Errorf("latest block: %w", err)
			}
			tx, ack, err := svc.Mint(cmd.Context(), amount)
			if err != nil {
				return err
			}
			printSubmitted(cmd, tx, ack)
			return nil
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "decode a hex encoded msg field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("hex: %w", err)
			}
			msg, err := types.DecodeMessage(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func (a *app) keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "create a new key at --key-file and print its address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.conf.KeyFile == "" {
				return errNoKeyFile
			}
			signer, err := signing.NewEdSigner(signing.ToFile(a.conf.KeyFile))
			if err != nil {
				return err
			}
			a.logger.Info("created key", zap.String("file", a.conf.KeyFile))
			fmt.Fprintln(cmd.OutOrStdout(), signer.PublicKey())
			return nil
		},
	}
}

func printSubmitted(cmd *cobra.Command, tx *types.Transaction, ack string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id:   %s\n", tx.ID())
	fmt.Fprintf(out, "node: %s\n", ack)
}
