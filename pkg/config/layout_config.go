package config

// 布局配置常量
// 本文件定义了窗口尺寸、礼盒和揭示图片的布局参数

const (
	// DefaultWindowWidth / DefaultWindowHeight 默认逻辑画布尺寸
	// 画布尺寸在启动时确定一次，之后窗口缩放不会改变模拟坐标系
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768

	// WideLayoutThreshold 宽屏布局阈值（像素）
	WideLayoutThreshold = 1000

	// GiftBoxWidth / GiftBoxHeight 礼盒盒身尺寸
	GiftBoxWidth  = 160.0
	GiftBoxHeight = 120.0

	// GiftLidHeight 盒盖高度，盒盖比盒身左右各宽 GiftLidOverhang
	GiftLidHeight   = 34.0
	GiftLidOverhang = 10.0

	// GiftRibbonWidth 丝带宽度
	GiftRibbonWidth = 22.0

	// GiftLidLiftDistance 第二步盒盖弹起的距离
	GiftLidLiftDistance = 220.0

	// GiftDropDistance 第三步盒身下落的距离
	GiftDropDistance = 260.0

	// HintFontSize 提示文字字号
	HintFontSize = 22.0
)

// RevealImageSize 根据画布宽度返回揭示图片的显示尺寸
//
// 宽屏（>= 1000）使用 495x345，否则使用 500x355
func RevealImageSize(surfaceWidth int) (w, h int) {
	if surfaceWidth >= WideLayoutThreshold {
		return 495, 345
	}
	return 500, 355
}

// GiftBoxOrigin 返回盒身左上角坐标（盒身在画布中居中，略低于中心）
func GiftBoxOrigin(surfaceWidth, surfaceHeight int) (x, y float64) {
	x = (float64(surfaceWidth) - GiftBoxWidth) / 2
	y = (float64(surfaceHeight)-GiftBoxHeight)/2 + GiftLidHeight/2
	return x, y
}
