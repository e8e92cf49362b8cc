package orm

import "time"

type core struct {
	mdls        []Middleware
	connTimeout time.Duration // 获取连接时的超时时间
}
