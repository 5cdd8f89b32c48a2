// pkg/extractor/dicts.go
package extractor

// keywordCategory 关键词类目：类目名 + 触发词表
// 顺序即输出顺序，新增类目只需追加数据
type keywordCategory struct {
	Name     string
	Keywords []string
}

// conceptDict 概念词典，命中分词结果即作为概念输出
var conceptDict = []string{
	"半导体", "芯片", "人工智能", "ChatGPT", "多模态", "机器人",
	"新能源", "新能源车", "锂电池", "电池", "光伏", "风电", "储能",
	"医药", "生物医药", "疫苗", "医疗器械",
	"军工", "航天", "卫星",
	"金融", "银行", "证券", "保险",
	"房地产", "建筑", "建材",
	"白酒", "食品", "农业", "电商", "社交媒体",
}

// fundCategories 资金类型类目
var fundCategories = []keywordCategory{
	{"主力资金", []string{"主力资金", "主力", "大单"}},
	{"杠杆资金", []string{"杠杆资金", "融资余额", "两融", "融资融券"}},
	{"北向资金", []string{"北向资金", "北上资金", "外资"}},
	{"龙虎榜", []string{"龙虎榜", "游资"}},
	{"机构资金", []string{"机构资金", "机构买入", "机构卖出", "机构席位"}},
}

// marketStatusCategories 盘面状态类目
var marketStatusCategories = []keywordCategory{
	{"涨停", []string{"涨停", "封板", "一字板"}},
	{"跌停", []string{"跌停"}},
	{"连阳", []string{"连阳"}},
	{"连阴", []string{"连阴"}},
	{"创新高", []string{"创新高", "新高"}},
	{"创新低", []string{"创新低", "新低"}},
}

// marketOverviewKeywords 大盘综述关键词，仅匹配标题
var marketOverviewKeywords = []string{
	"A股", "两市", "大盘", "沪指", "深指", "创业板", "科创板",
	"成交额", "成交量", "万亿", "两融余额",
}

// limitUpTitleKeywords 涨停相关关键词，仅匹配标题
var limitUpTitleKeywords = []string{"涨停", "封单", "封板", "连板", "一字板"}
