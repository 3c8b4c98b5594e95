package main

import (
	"errors"
	"fmt"

	grpc_logsettable "github.com/grpc-ecosystem/go-grpc-middleware/logging/settable"
	grpczap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/gulfstream/seashell/api/client"
	"github.com/gulfstream/seashell/blockwatch"
	"github.com/gulfstream/seashell/config"
	"github.com/gulfstream/seashell/log"
	"github.com/gulfstream/seashell/signing"
	"github.com/gulfstream/seashell/txs"
)

var errNoKeyFile = errors.New("no key file, set --key-file or run keygen")

// grpclog routes grpc internal logs to the command logger.
var grpclog = grpc_logsettable.ReplaceGrpcLoggerV2()

// app carries what every command needs once flags are parsed.
type app struct {
	fs         afero.Fs
	configFile string
	conf       config.Config
	logger     *zap.Logger
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "seashell",
		Short:         "wallet client for the Gulf Stream ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(a.fs, a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.conf = conf
			a.logger, err = log.New("seashell", conf.LogLevel, conf.LogEncoder)
			if err != nil {
				return err
			}
			grpczap.SetGrpcLoggerV2(grpclog, a.logger.Named("grpc"))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "load configuration from file")
	config.AddFlags(root.PersistentFlags(), config.DefaultConfig())

	root.AddCommand(
		a.balanceCmd(),
		a.historyCmd(),
		a.txCmd(),
		a.latestCmd(),
		a.watchCmd(),
		a.transferCmd(),
		a.mintCmd(),
		a.decodeCmd(),
		a.keygenCmd(),
	)
	return root
}

func (a *app) dial() (*client.Client, error) {
	return client.New(a.conf.Endpoint,
		client.WithLogger(a.logger.Named("client")),
		client.WithTimeout(a.conf.RequestTimeout),
		client.WithRetries(a.conf.Retries),
		client.WithRateLimit(rate.Limit(a.conf.RateLimit), max(1, int(a.conf.RateLimit))),
	)
}

func (a *app) signer() (*signing.EdSigner, error) {
	if a.conf.KeyFile == "" {
		return nil, errNoKeyFile
	}
	signer, err := signing.NewEdSigner(signing.FromFile(a.conf.KeyFile))
	if err != nil {
		return nil, fmt.Errorf("load key: %w", err)
	}
	return signer, nil
}

func (a *app) watcher(cl *client.Client) *blockwatch.Watcher {
	return blockwatch.New(cl,
		blockwatch.WithLogger(a.logger.Named("blockwatch")),
		blockwatch.WithInterval(a.conf.PollInterval),
	)
}

// service connects to the node. The returned func closes the connection.
func (a *app) service(withSigner bool) (*txs.Service, *blockwatch.Watcher, func(), error) {
	cl, err := a.dial()
	if err != nil {
		return nil, nil, nil, err
	}
	opts := []txs.Opt{
		txs.WithConfig(a.conf.Txs()),
		txs.WithLogger(a.logger.Named("txs")),
	}
	if withSigner {
		signer, err := a.signer()
		if err != nil {
			cl.Close()
			return nil, nil, nil, err
		}
		opts = append(opts, txs.WithSigner(signer))
	}
	w := a.watcher(cl)
	svc, err := txs.New(cl, w, opts...)
	if err != nil {
		cl.Close()
		return nil, nil, nil, err
	}
	return svc, w, func() { cl.Close() }, nil
}
