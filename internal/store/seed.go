package store

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"deepflood/internal/level"
	"deepflood/internal/models"
)

// DefaultCategories returns the seed category set: the seven boards the
// forum launched with. Slugs are the stable keys posts reference.
func DefaultCategories() []models.Category {
	return []models.Category{
		{
			ID: uuid.New(), Name: "日常", Slug: "daily",
			Description: "日常生活讨论，分享生活中的点点滴滴",
			Color:       "bg-blue-500", Icon: "☀️",
			PostCount: 1234, MemberCount: 5678, TodayPostCount: 23,
			IsActive:   true,
			Moderators: []string{"admin", "moderator1"},
			Rules:      []string{"保持友善和尊重的交流氛围", "不发布违法违规内容", "避免重复发帖", "使用合适的标题和标签"},
		},
		{
			ID: uuid.New(), Name: "技术", Slug: "tech",
			Description: "技术交流与分享，编程、开发、工具讨论",
			Color:       "bg-green-500", Icon: "💻",
			PostCount: 2345, MemberCount: 8901, TodayPostCount: 45,
			IsActive:   true,
			Moderators: []string{"admin", "tech_mod"},
			Rules:      []string{"分享技术经验和知识", "提供详细的代码示例", "标注技术栈和版本信息", "鼓励开源和协作"},
		},
		{
			ID: uuid.New(), Name: "信息", Slug: "info",
			Description: "资讯与信息分享，行业动态、新闻资讯",
			Color:       "bg-purple-500", Icon: "📰",
			PostCount: 876, MemberCount: 3456, TodayPostCount: 12,
			IsActive:   true,
			Moderators: []string{"admin", "info_mod"},
			Rules:      []string{"分享真实可靠的信息", "注明信息来源", "避免传播谣言", "及时更新过时信息"},
		},
		{
			ID: uuid.New(), Name: "测评", Slug: "review",
			Description: "产品测评与体验分享，客观评价各类产品",
			Color:       "bg-orange-500", Icon: "⭐",
			PostCount: 567, MemberCount: 2345, TodayPostCount: 8,
			IsActive:   true,
			Moderators: []string{"admin", "review_mod"},
			Rules:      []string{"提供客观真实的评价", "包含详细的使用体验", "避免恶意差评或好评", "声明是否有利益关系"},
		},
		{
			ID: uuid.New(), Name: "交易", Slug: "trade",
			Description: "买卖交易信息，二手物品、服务交易",
			Color:       "bg-red-500", Icon: "💰",
			PostCount: 789, MemberCount: 4567, TodayPostCount: 15,
			IsActive:   true,
			Moderators: []string{"admin", "trade_mod"},
			Rules:      []string{"提供真实的商品信息", "明确标注价格和交易方式", "禁止发布违禁物品", "注意交易安全"},
		},
		{
			ID: uuid.New(), Name: "拼车", Slug: "carpool",
			Description: "拼车出行信息，共享出行资源",
			Color:       "bg-yellow-500", Icon: "🚗",
			PostCount: 234, MemberCount: 1234, TodayPostCount: 5,
			IsActive:   true,
			Moderators: []string{"admin", "carpool_mod"},
			Rules:      []string{"提供准确的出行信息", "注明出发时间和地点", "确保联系方式有效", "注意出行安全"},
		},
		{
			ID: uuid.New(), Name: "推广", Slug: "promotion",
			Description: "推广与宣传，产品推广、活动宣传",
			Color:       "bg-pink-500", Icon: "📢",
			PostCount: 345, MemberCount: 2345, TodayPostCount: 7,
			IsActive:   true,
			Moderators: []string{"admin", "promo_mod"},
			Rules:      []string{"避免过度推广", "提供有价值的内容", "遵守广告发布规范", "不发布虚假宣传"},
		},
	}
}

// Seed populates empty post and comment stores with the demo fixture set.
// A no-op if posts already exist, so restarts keep accumulated data. The
// fixtures keep the web client's demo content: a sticky announcement,
// posts spread across every board, and a short reply chain on the sticky
// post.
func Seed(ctx context.Context, posts *PostsStore, comments *CommentsStore) {
	if posts.Len() > 0 {
		slog.Info("stores already seeded, skipping")
		return
	}

	// Fixture authors come from the fixed demo roster so their ids resolve
	// through the per-user level endpoint.
	walker := demoAuthor("walker")
	jkoy := demoAuthor("jkoy")
	yuzu := demoAuthor("yuzu")
	david := demoAuthor("David")
	si := demoAuthor("Si")
	toboo := demoAuthor("toboo")
	evan := demoAuthor("Evan")

	fixtures := []models.Post{
		{
			Title: "升级报告：\"无限测试\"，营运系统，一键导出", Content: "NodeQuality测试脚本发布",
			Topic: "tech", Author: walker, ReplyCount: 351, ViewCount: 55911,
			CreatedAt: "5天前", UpdatedAt: "5天前", IsSticky: true,
		},
		{
			Title: "公告：NodeSeek启用DeepFlood社区优化计划", Content: "DeepFlood社区优化计划启动",
			Topic: "info", Author: jkoy, ReplyCount: 91, ViewCount: 5276,
			CreatedAt: "23分钟前", UpdatedAt: "23分钟前",
		},
		{
			Title: "今天的天气真不错，适合出门散步", Content: "分享一下今天的好心情，阳光明媚的日子总是让人心情愉悦",
			Topic: "daily", Author: yuzu, ReplyCount: 15, ViewCount: 234,
			CreatedAt: "刚刚", UpdatedAt: "刚刚",
		},
		{
			Title: "分享一个实用的 React Hook 封装技巧", Content: "最近在项目中总结的一些 React Hook 最佳实践，希望对大家有帮助",
			Topic: "tech", Author: david, ReplyCount: 42, ViewCount: 1205,
			CreatedAt: "2小时前", UpdatedAt: "2小时前",
		},
		{
			Title: "NodeSeek 新功能上线通知", Content: "我们刚刚发布了一些新功能，包括更好的搜索体验和消息通知",
			Topic: "info", Author: si, ReplyCount: 67, ViewCount: 2341,
			CreatedAt: "1天前", UpdatedAt: "1天前",
		},
		{
			Title: "MacBook Pro M3 深度体验报告", Content: "使用了一个月的 MacBook Pro M3，来分享一下真实的使用感受",
			Topic: "review", Author: toboo, ReplyCount: 89, ViewCount: 3456,
			CreatedAt: "3天前", UpdatedAt: "3天前",
		},
		{
			Title: "出售闲置 iPhone 14 Pro，9成新", Content: "因为换了新手机，出售闲置的 iPhone 14 Pro，成色很好，有意者私信",
			Topic: "trade", Author: evan, ReplyCount: 23, ViewCount: 567,
			CreatedAt: "6小时前", UpdatedAt: "6小时前",
		},
		{
			Title: "周末一起去爬山吗？寻找同行伙伴", Content: "计划这个周末去附近的山上徒步，有没有小伙伴一起？",
			Topic: "carpool", Author: yuzu, ReplyCount: 12, ViewCount: 189,
			CreatedAt: "45分钟前", UpdatedAt: "45分钟前",
		},
		{
			Title: "推荐一个超好用的在线工具网站", Content: "最近发现了一个集合了很多实用工具的网站，分享给大家",
			Topic: "promotion", Author: david, ReplyCount: 34, ViewCount: 892,
			CreatedAt: "4小时前", UpdatedAt: "4小时前",
		},
		{
			Title: "Next.js 14 新特性详解和最佳实践", Content: "深入解析 Next.js 14 的新功能，包括 App Router 和 Server Components",
			Topic: "tech", Author: toboo, ReplyCount: 156, ViewCount: 2890,
			CreatedAt: "12小时前", UpdatedAt: "12小时前",
		},
	}

	// Insert directly so fixture timestamps and counters survive; Add would
	// stamp everything as fresh with zero counts.
	posts.mu.Lock()
	for _, p := range fixtures {
		p.ID = uuid.New()
		posts.posts = append(posts.posts, p)
	}
	sticky := posts.posts[0]
	posts.snapshot(ctx)
	posts.mu.Unlock()

	// A short reply chain on the sticky post.
	first := models.Comment{
		ID: uuid.New(), PostID: sticky.ID,
		Content: "这个功能真的很实用！期待更多更新。",
		Author:  david, CreatedAt: "2小时前", UpdatedAt: "2小时前",
		Likes: 3, LikedBy: []uuid.UUID{yuzu.ID, si.ID, toboo.ID},
	}
	reply := models.Comment{
		ID: uuid.New(), PostID: sticky.ID, ParentID: &first.ID,
		Content: "同意楼上，这个测试系统确实解决了很多痛点。",
		Author:  toboo, CreatedAt: "1小时前", UpdatedAt: "1小时前",
		Likes: 2, LikedBy: []uuid.UUID{david.ID, si.ID},
	}

	comments.mu.Lock()
	comments.comments = append(comments.comments, first, reply)
	comments.snapshot(ctx)
	comments.mu.Unlock()

	slog.Info("stores seeded with demo data",
		"posts", len(fixtures),
		"comments", 2,
	)
}

// demoAuthor builds the author summary for a demo roster entry.
func demoAuthor(name string) models.Author {
	for _, u := range level.DemoUsers {
		if u.Name == name {
			return models.Author{
				ID:     u.ID,
				Name:   u.Name,
				Avatar: "/user-" + strings.ToLower(u.Name) + ".jpg",
			}
		}
	}
	return models.Author{}
}
