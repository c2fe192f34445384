package lifecycle

import (
	"slices"
	"sync"

	"go.uber.org/multierr"
)

// ============================================================================
//                              生命周期协调器
// ============================================================================

// Resetter 可被重置的托管对象
type Resetter interface {
	Name() string
	Reset() error
}

// Coordinator 生命周期协调器
//
// 追踪已注册的 Host，在停止时按注册逆序重置。
type Coordinator struct {
	mu      sync.Mutex
	hosts   []Resetter
	stopped bool
}

// NewCoordinator 创建生命周期协调器
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Register 注册托管对象，重复注册会被忽略
func (c *Coordinator) Register(r Resetter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.Contains(c.hosts, r) {
		return
	}
	c.hosts = append(c.hosts, r)
	c.stopped = false

	logger.Debug("托管对象已注册", "host", r.Name())
}

// Hosts 返回已注册托管对象的名称（注册顺序）
func (c *Coordinator) Hosts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.hosts))
	for _, h := range c.hosts {
		names = append(names, h.Name())
	}
	return names
}

// Stop 按注册逆序重置所有托管对象
//
// 单个对象重置失败不会中断其余对象，错误合并后返回。重复调用无副作用。
func (c *Coordinator) Stop() error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil
	}
	c.stopped = true
	hosts := slices.Clone(c.hosts)
	c.mu.Unlock()

	var err error
	for i := len(hosts) - 1; i >= 0; i-- {
		err = multierr.Append(err, hosts[i].Reset())
	}

	logger.Info("生命周期协调器已停止", "hosts", len(hosts))
	return err
}

// Stopped 检查协调器是否已停止
func (c *Coordinator) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}
