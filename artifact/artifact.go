package artifact

import (
	"io"
)

// Handle 可重复读取的图片字节句柄
// Name 仅作为元数据（日志、扩展名推断），不要求对应真实文件
type Handle interface {
	io.ReadSeeker

	// Name 返回逻辑文件名
	Name() string
}

// Artifact 可读写的字节目标，承载重新编码后的图片
type Artifact interface {
	Handle
	io.Writer

	// ID 返回本次分配的唯一标识
	ID() string

	// Discard 释放底层存储，编码失败时调用，避免遗留临时文件
	Discard() error
}

// Factory 分配新的 Artifact
type Factory interface {
	// Create 按逻辑文件名分配目标，name 只用于推断扩展名
	Create(name string) (Artifact, error)
}

// Named 将任意 io.ReadSeeker 包装为 Handle
func Named(rs io.ReadSeeker, name string) Handle {
	return &named{rs: rs, name: name}
}

type named struct {
	rs   io.ReadSeeker
	name string
}

func (n *named) Read(p []byte) (int, error) {
	return n.rs.Read(p)
}

func (n *named) Seek(offset int64, whence int) (int64, error) {
	return n.rs.Seek(offset, whence)
}

func (n *named) Name() string {
	return n.name
}

// Rewind 将句柄移回起始位置
func Rewind(s io.Seeker) error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}
