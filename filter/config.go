package filter

import (
	"github.com/leeforge/imagefit/logging"
)

// Config 过滤器配置，对应宿主配置文件的 filter 段
type Config struct {
	// MaxWidth 最大宽度，0 表示该方向不限制
	MaxWidth int `mapstructure:"max-width" json:"maxWidth" yaml:"max-width" validate:"gte=0"`

	// MaxHeight 最大高度，0 表示该方向不限制
	MaxHeight int `mapstructure:"max-height" json:"maxHeight" yaml:"max-height" validate:"gte=0"`

	// Backend 编解码后端（native 纯 Go，imaging 带 EXIF 自动转正）
	Backend string `mapstructure:"backend" json:"backend" yaml:"backend" default:"native" validate:"omitempty,oneof=native imaging"`

	// Encoder 原样透传给后端的编码参数（quality、filter 等）
	Encoder map[string]any `mapstructure:"encoder" json:"encoder,omitempty" yaml:"encoder"`

	// Store 重编码产物的存放方式
	Store string `mapstructure:"store" json:"store" yaml:"store" default:"memory" validate:"omitempty,oneof=memory file"`

	// TempDir file 存储使用的目录，空值退回系统临时目录
	TempDir string `mapstructure:"temp-dir" json:"tempDir,omitempty" yaml:"temp-dir"`

	// Logging 可选的日志配置，缺省时过滤器保持静默
	Logging *logging.Config `mapstructure:"logging" json:"logging,omitempty" yaml:"logging"`
}
