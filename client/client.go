package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"dlist/config"
	"dlist/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/inconshreveable/log15"
)

type Client struct {
	queue    *sqs.SQS
	queueUrl string
	logger   log15.Logger
}

func NewClient(conf *config.Config, logger log15.Logger) (*Client, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(conf.Aws.Region),
		Credentials: credentials.NewStaticCredentials(conf.Aws.ClientId, conf.Aws.ClientSecret, conf.Aws.ClientToken),
	}))

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("cannot assign session with credentials: %w", err)
	}

	return &Client{
		queue:    sqs.New(sess),
		queueUrl: conf.Aws.QueueUrl,
		logger:   logger,
	}, nil
}

// SendMessage publishes cmd. Commands for one list share a message group,
// so the FIFO queue delivers them in send order.
func (c *Client) SendMessage(cmd *types.Command) error {
	req, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	_, err = c.queue.SendMessage(&sqs.SendMessageInput{
		DelaySeconds:           aws.Int64(0),
		MessageBody:            aws.String(string(req)),
		QueueUrl:               &c.queueUrl,
		MessageGroupId:         aws.String(messageGroup(cmd)),
		MessageDeduplicationId: aws.String(createDeduplicationId(string(req))),
	})
	if err != nil {
		c.logger.Error("Cannot send message", "action", cmd.Action, "list", cmd.List, "error", err)
	}
	return err
}

func messageGroup(cmd *types.Command) string {
	if cmd.List == "" {
		return "lists"
	}
	return cmd.List
}

func (c *Client) Append(list, value string) error {
	return c.SendMessage(&types.Command{Action: types.AppendValue, List: list, Value: value})
}

func (c *Client) Insert(list string, position int, value string) error {
	return c.SendMessage(&types.Command{Action: types.InsertValue, List: list, Position: &position, Value: value})
}

func (c *Client) Pop(list string, position int) error {
	return c.SendMessage(&types.Command{Action: types.PopValue, List: list, Position: &position})
}

func (c *Client) Remove(list, value string) error {
	return c.SendMessage(&types.Command{Action: types.RemoveValue, List: list, Value: value})
}

func (c *Client) Extend(list, source string) error {
	return c.SendMessage(&types.Command{Action: types.ExtendList, List: list, Source: source})
}

func (c *Client) Show(list string) error {
	return c.SendMessage(&types.Command{Action: types.ShowList, List: list})
}

type ClientsManager struct {
	clients   map[string]*ClientUsage
	input     *os.File
	clientCfg *config.Config
	idle      time.Duration
	logger    log15.Logger
	mux       sync.Mutex
	ctx       context.Context
	Cancel    context.CancelFunc
}

type ClientUsage struct {
	client   *Client
	lastUsed time.Time
}

func NewClientsManager(cfg *config.Config) (manager *ClientsManager, err error) {
	input := os.Stdin
	if len(cfg.ClientsInputPath) != 0 {
		input, err = os.Open(cfg.ClientsInputPath)
		if err != nil {
			return nil, err
		}
	}
	lvl, err := log15.LvlFromString(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := log15.New("service", "client")
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StdoutHandler))

	idle := time.Duration(cfg.ClientIdleSeconds) * time.Second
	if idle <= 0 {
		idle = 10 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &ClientsManager{
		clients:   make(map[string]*ClientUsage),
		input:     input,
		clientCfg: cfg,
		idle:      idle,
		logger:    logger,
		ctx:       ctx,
		Cancel:    cancel,
	}, nil
}

func (cm *ClientsManager) ListenClientActions() error {
	if cm.input == os.Stdin {
		fmt.Println("Write clients tasks here in format <clientId> <command>")
	}

	ticker := setInterval(cm.removeUnusedClients, cm.idle)
	defer ticker.Stop()

	lines, errChan := SubscribeToFileInput(cm.ctx, cm.input)

	for {
		select {
		case <-cm.ctx.Done():
			return nil
		case line := <-lines:
			if len(line) != 0 {
				if err := cm.processClientAction(line); err != nil {
					cm.logger.Error("Cannot process client action", "error", err)
				}
			}
		case err := <-errChan:
			if err != nil {
				return err
			}
		}
	}
}

func (cm *ClientsManager) removeUnusedClients() {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	for clientId, clientUsage := range cm.clients {
		if time.Since(clientUsage.lastUsed) > cm.idle {
			cm.logger.Debug("Removing idle client", "client", clientId)
			delete(cm.clients, clientId)
		}
	}
}

// parseClientAction splits "<clientId> <command json>".
func parseClientAction(inputStr string) (string, *types.Command, error) {
	inputStr = strings.TrimSpace(inputStr)
	clientId, cmdStr, found := strings.Cut(inputStr, " ")
	if !found || clientId == "" {
		return "", nil, fmt.Errorf("wrong input string %q, should be in format <clientId> <command>", inputStr)
	}

	var cmd *types.Command
	if err := json.Unmarshal([]byte(cmdStr), &cmd); err != nil {
		return "", nil, err
	}
	if cmd == nil || cmd.Action == "" {
		return "", nil, fmt.Errorf("command without action: %s", cmdStr)
	}
	return clientId, cmd, nil
}

func (cm *ClientsManager) processClientAction(inputStr string) error {
	clientId, cmd, err := parseClientAction(inputStr)
	if err != nil {
		return err
	}

	cm.mux.Lock()
	defer cm.mux.Unlock()
	usage, ok := cm.clients[clientId]
	if !ok {
		client, err := NewClient(cm.clientCfg, cm.logger.New("client", clientId))
		if err != nil {
			return err
		}
		usage = &ClientUsage{client: client}
		cm.clients[clientId] = usage
	}
	usage.lastUsed = time.Now()
	// sent synchronously so one client's commands keep their input order
	return usage.client.SendMessage(cmd)
}
