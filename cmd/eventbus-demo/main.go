// Package main 提供 go-eventbus 演示程序
//
// 演示内容：
//   - 得分事件的订阅、发布、退订与可选发布
//   - 分发中订阅（下一次发布可见）
//   - 对象池复用事件负载
//   - 统计快照，以及通过自省服务暴露的 Prometheus 指标
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dep2p/go-eventbus"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("eventbus/cmd")

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
var (
	configFile = flag.String("config", "", "配置文件路径（JSON）")
	preset     = flag.String("preset", eventbus.PresetDefault, "预设配置 (default/minimal/debug)")
	shared     = flag.Bool("shared", false, "使用进程级默认注册表")
	rounds     = flag.Int("rounds", 3, "发布轮数")
	poolSize   = flag.Int("pool-size", 4, "对象池预填充数量")

	listenAddr = flag.String("listen", "", "自省与指标 HTTP 监听地址，例如 127.0.0.1:6060（为空则不启动）")

	logLevel  = flag.String("log-level", "", "日志级别，例如 info 或 core/pool=debug,info")
	logFormat = flag.String("log-format", "", "日志格式 (text/json)")

	showVersion = flag.Bool("version", false, "显示版本信息")
)

// ═══════════════════════════════════════════════════════════════════════════
// 演示事件
// ═══════════════════════════════════════════════════════════════════════════

// Scored 得分事件
type Scored int

func (Scored) EventMarker() {}

// Chatted 聊天事件，负载从对象池取出
type Chatted struct {
	eventbus.Marker
	Msg *message
}

type message struct {
	From string
	Text string
}

func (m *message) reset() {
	m.From, m.Text = "", ""
}

// scoreBoard 指针处理器，按指针识别
type scoreBoard struct {
	total Scored
	hits  int
}

func (b *scoreBoard) HandleEvent(_ any, s Scored) {
	b.total += s
	b.hits++
}

// player 事件发送者
type player struct {
	Name string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Println(eventbus.VersionInfo())
		return nil
	}

	rt, err := eventbus.New(buildOptions()...)
	if err != nil {
		return fmt.Errorf("创建运行时: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rt.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := rt.Stop(stopCtx); err != nil {
			logger.Warn("停止运行时失败", "error", err)
		}
	}()

	if err := runScored(rt.EventBus()); err != nil {
		return err
	}
	if err := runChat(rt); err != nil {
		return err
	}

	printStats(rt.Stats())

	if *listenAddr == "" {
		return nil
	}
	return waitForSignal(ctx, rt)
}

func buildOptions() []eventbus.Option {
	var opts []eventbus.Option
	if *configFile != "" {
		opts = append(opts, eventbus.WithConfigFile(*configFile))
	}
	opts = append(opts,
		eventbus.WithPreset(*preset),
		eventbus.WithShared(*shared),
		eventbus.WithPoolSize(*poolSize),
	)
	if *logLevel != "" {
		opts = append(opts, eventbus.WithLogLevel(*logLevel))
	}
	if *logFormat != "" {
		opts = append(opts, eventbus.WithLogFormat(*logFormat))
	}
	if *listenAddr != "" {
		opts = append(opts, eventbus.WithIntrospect(*listenAddr))
	}
	return opts
}

// runScored 订阅、发布、退订、可选发布
func runScored(bus *eventbus.Registry) error {
	alice := &player{Name: "alice"}
	board := &scoreBoard{}

	if err := eventbus.Subscribe[Scored](bus, "Scored", board); err != nil {
		return err
	}

	// 分发中订阅，只在下一次发布时可见
	var late *scoreBoard
	spawn := eventbus.HandlerFunc[Scored](func(_ any, _ Scored) {
		if late != nil {
			return
		}
		late = &scoreBoard{}
		if err := eventbus.Subscribe[Scored](bus, "Scored", late); err != nil {
			logger.Error("分发中订阅失败", "error", err)
		}
	})
	if err := eventbus.Subscribe[Scored](bus, "Scored", spawn); err != nil {
		return err
	}

	for i := 1; i <= *rounds; i++ {
		if err := eventbus.Publish(bus, alice, Scored(i*5)); err != nil {
			return err
		}
	}

	fmt.Printf("scoreboard: total=%d hits=%d\n", board.total, board.hits)
	if late != nil {
		fmt.Printf("late subscriber: total=%d hits=%d\n", late.total, late.hits)
	}

	for _, h := range []eventbus.Handler[Scored]{board, spawn} {
		if err := eventbus.Unsubscribe[Scored](bus, "Scored", h); err != nil {
			return err
		}
	}
	if late != nil {
		if err := eventbus.Unsubscribe[Scored](bus, "Scored", late); err != nil {
			return err
		}
	}

	if err := eventbus.Publish(bus, alice, Scored(7), eventbus.Optional()); err != nil {
		return err
	}
	fmt.Printf("after unsubscribe: total=%d hits=%d\n", board.total, board.hits)

	// 严格模式下发布未订阅事件
	var missing *eventbus.EventMissingError
	if err := eventbus.Publish(bus, alice, Chatted{}); errors.As(err, &missing) {
		fmt.Printf("strict publish: %v\n", err)
	}
	return nil
}

// runChat 对象池复用事件负载
func runChat(rt *eventbus.Runtime) error {
	pools := rt.Pools()
	factory := eventbus.FactoryFunc[*message](func() *message { return &message{} })
	if err := eventbus.CreatePool[*message](pools, factory, -1); err != nil {
		return err
	}

	bus := rt.EventBus()
	onChat := func(_ any, e Chatted) {
		fmt.Printf("chat %s: %s\n", e.Msg.From, e.Msg.Text)
	}
	if err := eventbus.SubscribeFunc(bus, "Chatted", onChat); err != nil {
		return err
	}

	for i := 0; i < *rounds; i++ {
		msg, err := eventbus.GetObject[*message](pools)
		if err != nil {
			return err
		}
		msg.From = "bob"
		msg.Text = fmt.Sprintf("gg #%d", i+1)

		if err := eventbus.Publish(bus, nil, Chatted{Msg: msg}); err != nil {
			return err
		}
		msg.reset()
		eventbus.ReturnObject(pools, msg)
	}
	return nil
}

func printStats(snap eventbus.Snapshot) {
	fmt.Printf("slots=%d handlers=%d\n", snap.Slots, snap.Handlers)
	for _, e := range snap.Events {
		fmt.Printf("  event %-24s name=%-10s handlers=%d\n", e.EventType, e.Name, e.Handlers)
	}
	for _, p := range snap.Pools {
		fmt.Printf("  pool  %-24s idle=%d created=%d gets=%d puts=%d\n", p.Type, p.Idle, p.Created, p.Gets, p.Puts)
	}
}

// waitForSignal 自省服务运行直到收到退出信号
func waitForSignal(ctx context.Context, rt *eventbus.Runtime) error {
	fmt.Printf("introspect: http://%s/debug/introspect\n", rt.IntrospectAddr())
	fmt.Printf("metrics:    http://%s/metrics\n", rt.IntrospectAddr())
	<-ctx.Done()
	logger.Info("收到退出信号")
	return nil
}
