package http

import (
	"matching-srv/internal/matching/engine"
	"matching-srv/pkg/locale"
)

// reasonCatalog translates the engine's reason sentences.
var reasonCatalog = locale.Catalog{
	engine.ReasonContent: {
		locale.KO: "캠페인 카테고리와 콘텐츠가 잘 맞습니다",
		locale.AR: "توافق قوي بين المحتوى وفئة الحملة",
	},
	engine.ReasonAudience: {
		locale.KO: "팔로워 수가 캠페인의 이상적인 범위에 있습니다",
		locale.AR: "عدد المتابعين يناسب النطاق المثالي لجمهور الحملة",
	},
	engine.ReasonPerformance: {
		locale.KO: "높은 평점으로 캠페인을 완료한 실적이 있습니다",
		locale.AR: "سجل مثبت في إكمال حملات بتقييمات عالية",
	},
	engine.ReasonLocation: {
		locale.KO: "캠페인 타깃 지역에서 활동합니다",
		locale.AR: "مقيم في المنطقة المستهدفة للحملة",
	},
	engine.ReasonLanguage: {
		locale.KO: "캠페인 타깃 언어를 구사합니다",
		locale.AR: "يتحدث اللغات المستهدفة للحملة",
	},
	engine.ReasonFallback: {
		locale.KO: "전체 프로필 기준 잠재적 매칭입니다",
		locale.AR: "تطابق محتمل بناءً على الملف الشخصي العام",
	},
}
