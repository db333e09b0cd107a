// Package seed 各学习主题表的固定示例数据
package seed

import "study_tracker_backend/internal/model"

type entry struct {
	title, category, notes string
}

func topics(entries []entry) []model.TopicBase {
	out := make([]model.TopicBase, len(entries))
	for i, e := range entries {
		out[i] = model.TopicBase{
			Title:    e.title,
			Category: e.category,
			Status:   model.DefaultStatus,
			Notes:    e.notes,
		}
	}
	return out
}

func AspNetCoreTopics() []model.AspNetCoreTopic {
	base := topics([]entry{
		{"Middleware pipeline", "Fundamentals", "Order of Use/Run/Map and short-circuiting"},
		{"Dependency injection lifetimes", "Fundamentals", "Singleton, scoped, transient"},
		{"Configuration providers", "Fundamentals", "appsettings, environment variables, user secrets"},
		{"Minimal APIs", "Web API", "Route handlers, parameter binding, typed results"},
		{"Model binding and validation", "Web API", ""},
		{"Filters", "MVC", "Authorization, resource, action, exception, result filters"},
		{"Authentication schemes", "Security", "Cookies vs JWT bearer"},
		{"Health checks", "Operations", ""},
		{"Hosted services", "Operations", "BackgroundService and graceful shutdown"},
	})
	out := make([]model.AspNetCoreTopic, len(base))
	for i := range base {
		out[i] = model.AspNetCoreTopic{TopicBase: base[i]}
	}
	return out
}

func DesignPatternTopics() []model.DesignPatternTopic {
	base := topics([]entry{
		{"Factory Method", "Creational", ""},
		{"Abstract Factory", "Creational", "Families of related objects"},
		{"Builder", "Creational", "Step-by-step construction"},
		{"Singleton", "Creational", "Lazy initialization and thread safety"},
		{"Adapter", "Structural", ""},
		{"Decorator", "Structural", "Wrapping behaviour without subclassing"},
		{"Facade", "Structural", ""},
		{"Observer", "Behavioral", "Publish/subscribe"},
		{"Strategy", "Behavioral", "Interchangeable algorithms"},
		{"Command", "Behavioral", ""},
	})
	out := make([]model.DesignPatternTopic, len(base))
	for i := range base {
		out[i] = model.DesignPatternTopic{TopicBase: base[i]}
	}
	return out
}

func SystemDesignTopics() []model.SystemDesignTopic {
	base := topics([]entry{
		{"Load balancing", "Scalability", "L4 vs L7, health checks"},
		{"Caching strategies", "Performance", "Cache-aside, write-through, TTL"},
		{"Database sharding", "Data", "Hash vs range partitioning"},
		{"Replication", "Data", "Leader/follower, quorum"},
		{"CAP theorem", "Fundamentals", ""},
		{"Message queues", "Messaging", "At-least-once delivery, idempotent consumers"},
		{"Rate limiting", "Reliability", "Token bucket, sliding window"},
		{"Consistent hashing", "Scalability", ""},
	})
	out := make([]model.SystemDesignTopic, len(base))
	for i := range base {
		out[i] = model.SystemDesignTopic{TopicBase: base[i]}
	}
	return out
}

func CSharpTopics() []model.CSharpTopic {
	base := topics([]entry{
		{"Value vs reference types", "Fundamentals", ""},
		{"Boxing", "Fundamentals", "Allocation when a value type is treated as object"},
		{"Generics", "Type system", "Constraints and variance"},
		{"Nullable reference types", "Type system", ""},
		{"LINQ", "Collections", "Deferred execution"},
		{"async/await", "Concurrency", "Task, ConfigureAwait, cancellation"},
		{"IDisposable", "Memory", "using declarations and finalizers"},
		{"Records", "Type system", "Value equality and with-expressions"},
		{"Delegates and events", "Fundamentals", ""},
		{"Pattern matching", "Language features", "switch expressions, property patterns"},
	})
	out := make([]model.CSharpTopic, len(base))
	for i := range base {
		out[i] = model.CSharpTopic{TopicBase: base[i]}
	}
	return out
}

func EFCoreTopics() []model.EFCoreTopic {
	base := topics([]entry{
		{"DbContext lifetime", "Fundamentals", ""},
		{"Change tracking", "Fundamentals", "Tracked vs no-tracking queries"},
		{"Migrations", "Schema", "Add, apply, and script migrations"},
		{"Relationships", "Modeling", "One-to-many, many-to-many"},
		{"Loading related data", "Querying", "Eager, explicit, lazy"},
		{"Concurrency tokens", "Concurrency", "Row version and DbUpdateConcurrencyException"},
		{"Raw SQL queries", "Querying", ""},
	})
	out := make([]model.EFCoreTopic, len(base))
	for i := range base {
		out[i] = model.EFCoreTopic{TopicBase: base[i]}
	}
	return out
}
