package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
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

type Server struct {
	lists    *types.OrderedMap[string, *types.List[string]]
	queue    *sqs.SQS
	queueUrl string
	waitTime int64
	logFile  *os.File
	ctx      context.Context
	Cancel   context.CancelFunc
	logger   log15.Logger
	dataMux  sync.Mutex
	logsMux  sync.Mutex
}

func NewServer(conf *config.Config) (*Server, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(conf.Aws.Region),
		Credentials: credentials.NewStaticCredentials(conf.Aws.ClientId, conf.Aws.ClientSecret, conf.Aws.ClientToken),
	}))

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("cannot assign session with credentials: %w", err)
	}

	logFile, err := os.OpenFile(conf.LogFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		lists:    types.NewOrderedMap[string, *types.List[string]](),
		queue:    sqs.New(sess),
		logFile:  logFile,
		ctx:      ctx,
		Cancel:   cancel,
		queueUrl: conf.Aws.QueueUrl,
		logger:   logger,
		waitTime: conf.ServerWaitTimeSeconds,
	}, nil
}

func newLogger(level string) (log15.Logger, error) {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log15.New("service", "server")
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StdoutHandler))
	return logger, nil
}

func (s *Server) StartServer() error {
	defer s.logFile.Close()
	s.logger.Debug("Listening queue!", "url", s.queueUrl)
	messagesChan := make(chan *sqs.Message)
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.listenMessages(messagesChan)
	}()
	err := s.processMessages(messagesChan, errChan)
	return err
}

func (s *Server) listenMessages(messagesChan chan<- *sqs.Message) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		default:
			msgResult, err := s.queue.ReceiveMessageWithContext(s.ctx, &sqs.ReceiveMessageInput{
				AttributeNames: []*string{
					aws.String(sqs.MessageSystemAttributeNameSentTimestamp),
				},
				MessageAttributeNames: []*string{
					aws.String(sqs.QueueAttributeNameAll),
				},
				QueueUrl:            &s.queueUrl,
				MaxNumberOfMessages: aws.Int64(10),
				WaitTimeSeconds:     aws.Int64(s.waitTime),
			})
			if err != nil {
				if s.ctx.Err() != nil {
					return nil
				}
				s.logger.Error("Error while receiving messages", "error", err.Error())
				return err
			}
			for _, message := range msgResult.Messages {
				select {
				case messagesChan <- message:
				case <-s.ctx.Done():
					return nil
				}
			}
		}
	}
}

// processMessages handles messages one at a time in arrival order,
// since edits to the same list do not commute.
func (s *Server) processMessages(messagesChan <-chan *sqs.Message, errChan <-chan error) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		case err := <-errChan:
			return err
		case message := <-messagesChan:
			if message == nil || message.Body == nil {
				continue
			}
			s.handleMessage(*message.Body)
			_, err := s.queue.DeleteMessage(&sqs.DeleteMessageInput{
				QueueUrl:      &s.queueUrl,
				ReceiptHandle: message.ReceiptHandle,
			})
			if err != nil {
				s.logger.Error("Error while deleting message", "error", err)
				return err
			}
		}
	}
}

func (s *Server) handleMessage(body string) {
	var cmd *types.Command
	err := json.Unmarshal([]byte(body), &cmd)
	if err != nil {
		s.logger.Error("Cannot unmarshal message", "error", err.Error())
		return
	}
	if cmd == nil {
		return
	}
	log := s.processCommand(cmd)
	s.logger.Debug("Command processed", "action", cmd.Action, "list", cmd.List)
	s.writeLog(log)
}

func (s *Server) writeLog(log string) {
	s.logsMux.Lock()
	defer s.logsMux.Unlock()
	if _, err := s.logFile.WriteString(fmt.Sprintf("%s || %s\n", time.Now().Format(time.RFC822), log)); err != nil {
		s.logger.Error("Cannot write log file", "error", err)
	}
}
