package eventbus

import pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"

// publishSettings 是 pkg/interfaces.PublishSettings 的别名
type publishSettings = pkgif.PublishSettings
