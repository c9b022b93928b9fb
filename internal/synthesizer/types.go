package synthesizer

// StylingConfig 从零生成时的风格配置
// 四个字段都是自然语言描述，直接进入提示词
type StylingConfig struct {
	InputFormat          string `json:"input_format"`
	ExpectedOutputFormat string `json:"expected_output_format"`
	Task                 string `json:"task"`
	Scenario             string `json:"scenario"`
}

// Options 合成器行为参数
type Options struct {
	ChunkSize         int // 每个上下文块的词数
	ChunkOverlap      int // 相邻块重叠词数
	GoldensPerContext int // 每个上下文块生成的样例数
	MaxRepairAttempts int // 模型输出无法解析时追加修复请求的最大轮数
}

// DefaultOptions 默认参数
func DefaultOptions() Options {
	return Options{
		ChunkSize:         200,
		ChunkOverlap:      40,
		GoldensPerContext: 2,
		MaxRepairAttempts: 2,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ChunkSize <= 0 {
		o.ChunkSize = d.ChunkSize
	}
	if o.ChunkOverlap < 0 || o.ChunkOverlap >= o.ChunkSize {
		o.ChunkOverlap = d.ChunkOverlap
	}
	if o.GoldensPerContext <= 0 {
		o.GoldensPerContext = d.GoldensPerContext
	}
	if o.MaxRepairAttempts < 0 {
		o.MaxRepairAttempts = d.MaxRepairAttempts
	}
	return o
}
