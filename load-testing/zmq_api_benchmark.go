package main

import (
	zmqapi "NK2Reader/internal/platform/api/zmq"
	"NK2Reader/internal/platform/nk2/nk2test"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-zeromq/zmq4"
	"github.com/jedib0t/go-pretty/v6/table"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var errTimeout = fmt.Errorf("request timeout")

type RequestResult struct {
	Duration time.Duration
	Success  bool
	TimedOut bool
}

type BenchmarkStats struct {
	TotalRequests      int64
	SuccessfulRequests int64
	TimeoutRequests    int64
	ErrorRequests      int64
	ResponseTimes      []time.Duration
	StartTime          time.Time
	EndTime            time.Time
	mu                 sync.Mutex
}

func (b *BenchmarkStats) AddResult(result RequestResult) {
	atomic.AddInt64(&b.TotalRequests, 1)
	switch {
	case result.TimedOut:
		atomic.AddInt64(&b.TimeoutRequests, 1)
	case result.Success:
		atomic.AddInt64(&b.SuccessfulRequests, 1)
	default:
		atomic.AddInt64(&b.ErrorRequests, 1)
	}

	b.mu.Lock()
	b.ResponseTimes = append(b.ResponseTimes, result.Duration)
	b.mu.Unlock()
}

func (b *BenchmarkStats) Percentile(p float64) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.ResponseTimes) == 0 {
		return 0
	}
	sort.Slice(b.ResponseTimes, func(i, j int) bool {
		return b.ResponseTimes[i] < b.ResponseTimes[j]
	})
	return b.ResponseTimes[int(float64(len(b.ResponseTimes)-1)*p)]
}

func (b *BenchmarkStats) RPS() float64 {
	duration := b.EndTime.Sub(b.StartTime).Seconds()
	if duration == 0 {
		return 0
	}
	return float64(atomic.LoadInt64(&b.TotalRequests)) / duration
}

type ZmqClient struct {
	socket  zmq4.Socket
	timeout time.Duration
}

func NewZmqClient(address string, timeout time.Duration) (*ZmqClient, error) {
	socket := zmq4.NewReq(context.Background())
	if err := socket.Dial(address); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return &ZmqClient{socket: socket, timeout: timeout}, nil
}

func (c *ZmqClient) SendRequest(req zmqapi.ApiRequest) (zmqapi.ApiResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return zmqapi.ApiResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}
	if err := c.socket.Send(zmq4.NewMsg(payload)); err != nil {
		return zmqapi.ApiResponse{}, fmt.Errorf("failed to send request: %w", err)
	}

	msgChan := make(chan zmq4.Msg, 1)
	errChan := make(chan error, 1)
	go func() {
		msg, err := c.socket.Recv()
		if err != nil {
			errChan <- err
			return
		}
		msgChan <- msg
	}()

	select {
	case msg := <-msgChan:
		var resp zmqapi.ApiResponse
		if err := json.Unmarshal(msg.Bytes(), &resp); err != nil {
			return zmqapi.ApiResponse{}, fmt.Errorf("failed to unmarshal response: %w", err)
		}
		return resp, nil
	case err := <-errChan:
		return zmqapi.ApiResponse{}, err
	case <-time.After(c.timeout):
		return zmqapi.ApiResponse{}, errTimeout
	}
}

func (c *ZmqClient) Close() error {
	return c.socket.Close()
}

// syntheticFile builds a stream of rows contacts.
func syntheticFile(id, rows int) []byte {
	rs := make([]nk2test.Row, rows)
	for i := range rs {
		rs[i] = nk2test.Contact(
			fmt.Sprintf("Contact %d-%d", id, i),
			fmt.Sprintf("contact%d.%d@example.com", id, i))
	}
	return nk2test.NewFile(rs...).Bytes()
}

func worker(id int, address string, timeout, duration time.Duration, rows int,
	stats *BenchmarkStats, wg *sync.WaitGroup, sugar *zap.SugaredLogger) {
	defer wg.Done()

	client, err := NewZmqClient(address, timeout)
	if err != nil {
		sugar.Errorw("worker failed to create client", "worker", id, "error", err)
		return
	}
	defer client.Close()

	data := syntheticFile(id, rows)
	actions := []string{zmqapi.DECODE, zmqapi.CONTACTS, zmqapi.DUMP}
	endTime := time.Now().Add(duration)
	for time.Now().Before(endTime) {
		req := zmqapi.ApiRequest{
			Action: actions[rand.Intn(len(actions))],
			Name:   fmt.Sprintf("bench-%d", id),
			Data:   data,
		}

		start := time.Now()
		resp, err := client.SendRequest(req)
		stats.AddResult(RequestResult{
			Duration: time.Since(start),
			Success:  err == nil && resp.Success,
			TimedOut: err == errTimeout,
		})
		if err == errTimeout {
			// a REQ socket cannot send again before it receives
			return
		}
	}
}

func printResults(stats *BenchmarkStats) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("BENCHMARK RESULTS")
	t.AppendRows([]table.Row{
		{"Duration", stats.EndTime.Sub(stats.StartTime).Round(time.Millisecond)},
		{"Total Requests", stats.TotalRequests},
		{"Successful Requests", stats.SuccessfulRequests},
		{"Failed Requests", stats.ErrorRequests},
		{"Timeout Requests", stats.TimeoutRequests},
		{"RPS", fmt.Sprintf("%.2f", stats.RPS())},
	})
	t.AppendSeparator()
	for _, p := range []struct {
		name string
		q    float64
	}{{"p50", 0.50}, {"p90", 0.90}, {"p99", 0.99}, {"p999", 0.999}} {
		t.AppendRow(table.Row{p.name, stats.Percentile(p.q)})
	}
	t.Render()
}

func main() {
	var (
		address  = flag.String("address", "tcp://localhost:5555", "ZMQ server address")
		workers  = flag.Int("workers", 10, "Number of worker goroutines")
		duration = flag.Duration("duration", 30*time.Second, "Test duration")
		timeout  = flag.Duration("timeout", 5*time.Second, "Request timeout")
		rows     = flag.Int("rows", 100, "Contacts per synthetic file")
	)
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()
	sugar.Infow("starting benchmark", "address", *address, "workers", *workers,
		"duration", *duration, "rows", *rows)

	stats := &BenchmarkStats{StartTime: time.Now()}
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go worker(i, *address, *timeout, *duration, *rows, stats, &wg, sugar)
	}
	wg.Wait()
	stats.EndTime = time.Now()

	printResults(stats)
}
