package client

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// SubscribeToFileInput streams input line by line until ctx is done or input fails.
// Reaching EOF does not end the stream; the file is polled for appended lines.
func SubscribeToFileInput(ctx context.Context, input io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errChan := make(chan error, 1)
	go func() {
		reader := bufio.NewReader(input)
		for {
			line, err := readLine(ctx, reader)
			if err != nil {
				errChan <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines, errChan
}

func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	var line []byte
	for {
		chunk, err := reader.ReadBytes('\n')
		line = append(line, chunk...)
		if err == nil {
			return string(line), nil
		}
		if err != io.EOF {
			return "", err
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

func setInterval(function func(), interval time.Duration) *time.Ticker {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			function()
		}
	}()
	return ticker
}

func createDeduplicationId(data string) string {
	id := fmt.Sprintf("%s-%s", uuid.NewString(), hex.EncodeToString([]byte(data)))
	if len(id) > 128 {
		return id[:128]
	}
	return id
}
