package mongoclient

import (
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
)

const (
	mgSocketTimeout = 60 * time.Second
	mgConnTimeout   = 10 * time.Second
)

type Config struct {
	URI        string `mapstructure:"uri"`
	AuthDBName string `mapstructure:"authDBName"`
	DBName     string `mapstructure:"dbName"`
	EnableSSL  bool   `mapstructure:"enableSSL"`
	// PoolMultiplier sizes the pool per cpu, 1 when unset
	PoolMultiplier float64 `mapstructure:"poolMultiplier"`
}

// Client wraps mongo.Client
type Client struct {
	DbName string
	*mongo.Client
}

func (cli *Client) Ping(c ctx.Ctx) error {
	return cli.Client.Ping(c, readpref.Primary())
}

func clientOptions(cfg Config, conn connstring.ConnString) *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.URI).SetSocketTimeout(mgSocketTimeout).SetRetryWrites(true)

	// auth source from the uri wins over authDBName
	if conn.Username != "" && conn.AuthSource == "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           conn.AuthMechanism,
			AuthMechanismProperties: conn.AuthMechanismProperties,
			Username:                conn.Username,
			Password:                conn.Password,
			PasswordSet:             conn.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	multiplier := cfg.PoolMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	// every host keeps its own pool
	hosts := len(conn.Hosts)
	if hosts == 0 {
		hosts = 1
	}
	poolSize := (int(float64(runtime.NumCPU())*multiplier) + hosts - 1) / hosts
	opts.SetMinPoolSize(uint64(poolSize / 4))
	opts.SetMaxPoolSize(uint64(poolSize))

	if cfg.EnableSSL {
		opts.SetTLSConfig(&tls.Config{})
	}
	// sessions are the source of truth of a registration, wait for a majority
	opts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	return opts
}

// Connect dials and checks dbName can be listed
func Connect(c ctx.Ctx, cfg Config) (*Client, error) {
	logger := c.WithFields(log.Fields{"dbName": cfg.DBName})
	conn, err := connstring.Parse(cfg.URI)
	if err != nil {
		logger.WithField("err", err).Error("fail to parse connstring")
		return nil, err
	}
	logger = logger.WithField("mongoHosts", conn.Hosts)

	dialCtx, cancel := ctx.WithTimeout(c, mgConnTimeout)
	defer cancel()
	client, err := mongo.Connect(dialCtx, clientOptions(cfg, conn))
	if err != nil {
		logger.WithField("err", err).Error("fail to connect mongo db")
		return nil, err
	}
	if _, err := client.Database(cfg.DBName).ListCollectionNames(dialCtx, bson.D{}); err != nil {
		logger.WithField("err", err).Error("fail to test mongo db")
		_ = client.Disconnect(c)
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DBName,
	}, nil
}
