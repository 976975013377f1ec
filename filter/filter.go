package filter

import (
	"fmt"

	"github.com/creasty/defaults"
	"go.uber.org/zap"

	"github.com/leeforge/imagefit/artifact"
	"github.com/leeforge/imagefit/codec"
	"github.com/leeforge/imagefit/errors"
	"github.com/leeforge/imagefit/logging"
)

// Filter 有界缩放过滤器：图片超出约束时重新编码为缩小的副本，
// 任何一步失败都回绕并退回原图，绝不让上传因缩放而失败
type Filter struct {
	bounds  Bounds
	encoder codec.Options
	codec   codec.Codec
	store   artifact.Factory
	logger  logging.Logger
}

// New 根据配置构建过滤器
func New(cfg Config) (*Filter, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, err
	}
	if cfg.MaxWidth < 0 || cfg.MaxHeight < 0 {
		return nil, fmt.Errorf("negative bounds %dx%d", cfg.MaxWidth, cfg.MaxHeight)
	}

	cdc, err := codec.Get(cfg.Backend)
	if err != nil {
		return nil, err
	}

	var store artifact.Factory
	switch cfg.Store {
	case "memory":
		store = artifact.NewMemoryFactory()
	case "file":
		store, err = artifact.NewFileFactory(cfg.TempDir)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	logger := logging.Global()
	if cfg.Logging != nil {
		logger = logging.NewLogger(*cfg.Logging)
	}

	return &Filter{
		bounds:  Bounds{MaxWidth: cfg.MaxWidth, MaxHeight: cfg.MaxHeight},
		encoder: codec.Options(cfg.Encoder),
		codec:   cdc,
		store:   store,
		logger:  logger.Named("imagefit"),
	}, nil
}

// NewWith 显式注入协作对象，nil 参数取内置默认值
// （native 后端、内存存储、静默日志）
func NewWith(bounds Bounds, encoder codec.Options, cdc codec.Codec, store artifact.Factory, logger logging.Logger) *Filter {
	if cdc == nil {
		cdc = codec.MustGet("native")
	}
	if store == nil {
		store = artifact.NewMemoryFactory()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Filter{
		bounds:  bounds,
		encoder: encoder,
		codec:   cdc,
		store:   store,
		logger:  logger,
	}
}

// Resize 按约束缩放 src，成功返回承载重编码图片的新句柄，
// 失败返回回绕到起始位置的原句柄，不返回错误
func (f *Filter) Resize(src artifact.Handle) (out artifact.Handle) {
	if src == nil {
		return nil
	}

	out = src
	defer func() {
		// 任何 panic 都降级为退回原图
		if r := recover(); r != nil {
			f.failOpen(src, "panic", errors.FromPanic(r))
			out = src
		}
	}()

	// 两个方向都不限制时直接短路
	if f.bounds.Unconstrained() {
		f.rewind(src)
		return src
	}

	if err := artifact.Rewind(src); err != nil {
		f.failOpen(src, "rewind", errors.Wrap(err, errors.ErrorTypeInternal, "source rewind failed"))
		return src
	}

	decoded, err := f.codec.Decode(src)
	if err != nil {
		f.failOpen(src, "decode", err)
		return src
	}

	// 校验解码尺寸
	b := decoded.Image.Bounds()
	ow, oh := b.Dx(), b.Dy()
	if ow <= 0 || oh <= 0 {
		f.failOpen(src, "dimensions", errors.New(errors.ErrorTypeDimensions,
			fmt.Sprintf("non-positive dimensions %dx%d", ow, oh)))
		return src
	}

	// 计算目标尺寸
	nw, nh := f.bounds.Fit(ow, oh)

	resized, err := f.codec.Resize(decoded, nw, nh, f.encoder)
	if err != nil {
		f.failOpen(src, "resize", err)
		return src
	}

	dst, err := f.store.Create(src.Name())
	if err != nil {
		f.failOpen(src, "artifact", errors.Wrap(err, errors.ErrorTypeArtifact, "artifact allocation failed"))
		return src
	}

	if err := f.codec.Encode(dst, resized, f.encoder); err != nil {
		// 编码失败时释放产物，避免遗留临时文件
		_ = dst.Discard()
		f.failOpen(src, "encode", err)
		return src
	}

	// 两个句柄都回绕到起始位置
	f.rewind(dst)
	f.rewind(src)

	f.logger.Debug("image resized",
		zap.String("file", src.Name()),
		zap.String("artifact", dst.ID()),
		zap.String("format", decoded.Format),
		zap.Int("from_width", ow),
		zap.Int("from_height", oh),
		zap.Int("to_width", nw),
		zap.Int("to_height", nh),
	)
	return dst
}

// Func 返回适配上传处理链的闭包形式
func (f *Filter) Func() func(artifact.Handle) artifact.Handle {
	return func(h artifact.Handle) artifact.Handle {
		return f.Resize(h)
	}
}

// failOpen 记录失败原因并尽力把原句柄回绕到起始位置
func (f *Filter) failOpen(src artifact.Handle, stage string, err error) {
	f.rewind(src)
	f.logger.Warn("resize skipped, returning original",
		zap.String("stage", stage),
		zap.String("file", src.Name()),
		zap.String("type", string(errors.TypeOf(err))),
		zap.Error(err),
	)
}

func (f *Filter) rewind(h artifact.Handle) {
	if err := artifact.Rewind(h); err != nil {
		f.logger.Warn("rewind failed",
			zap.String("file", h.Name()),
			zap.Error(err),
		)
	}
}
