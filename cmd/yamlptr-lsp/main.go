package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
)

const lsName = "yamlptr-lsp"

var (
	version = "0.0.1"
)

type MainConfig struct {
	Gops   bool   `cli:"name=gops desc='start a gops agent'"`
	Config string `cli:"name=config desc='yaml file holding parse options'"`

	Main *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, lsName).
		WithSynopsis(lsName + " [-gops] [-config file]").
		WithDescription("yamlptr-lsp serves yaml diagnostics, paths and anchors over stdio.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func serve(cfg *MainConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
	}
	var parseOpts []yamlptr.ParseOption
	if cfg.Config != "" {
		o, err := yamlptr.LoadOptionsFile(cfg.Config)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		parseOpts = append(parseOpts, yamlptr.WithOptions(o))
	}

	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  cc.In,
		write: cc.Out,
	})
	server := newServer(parseOpts...)
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, handler)
	<-conn.Done()
	return conn.Err()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
}

func newServer(opts ...yamlptr.ParseOption) *Server {
	return &Server{
		docs: &documentStore{
			docs: make(map[string]*document),
			opts: opts,
		},
	}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindFull,
			OpenClose: true,
			Save:      &protocol.SaveOptions{IncludeText: false},
		},
		HoverProvider:              true,
		DefinitionProvider:         true,
		ReferencesProvider:         true,
		DocumentSymbolProvider:     true,
		DocumentFormattingProvider: true,
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}
