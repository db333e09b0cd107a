package model

// AspNetCoreTopic ASP.NET Core 学习主题
// swagger:model
type AspNetCoreTopic struct {
	TopicBase
}

func (AspNetCoreTopic) TableName() string {
	return "aspnetcore_topics"
}

// DesignPatternTopic 设计模式学习主题
// swagger:model
type DesignPatternTopic struct {
	TopicBase
}

func (DesignPatternTopic) TableName() string {
	return "design_pattern_topics"
}

// CSharpTopic C# 语言基础学习主题
// swagger:model
type CSharpTopic struct {
	TopicBase
}

func (CSharpTopic) TableName() string {
	return "csharp_topics"
}

// EFCoreTopic EF Core (ORM) 学习主题
// swagger:model
type EFCoreTopic struct {
	TopicBase
}

func (EFCoreTopic) TableName() string {
	return "efcore_topics"
}

// SystemDesignTopic 系统设计学习主题，额外记录复习信心值
// swagger:model
type SystemDesignTopic struct {
	TopicBase
	ConfidenceLevel *int `json:"confidenceLevel"`
}

func (SystemDesignTopic) TableName() string {
	return "system_design_topics"
}
