// pkg/extractor/extractor.go
package extractor

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"NewsRadar/pkg/model"

	"github.com/go-ego/gse"
)

var (
	// 「名称(代码)」形式：2-4个汉字紧跟括号内6位代码，兼容全角括号
	namedStockRe = regexp.MustCompile(`([\p{Han}]{2,4})[（(](\d{6})[）)]`)
	// 独立出现的裸6位代码
	bareCodeRe = regexp.MustCompile(`\b\d{6}\b`)
	// 涨停家数与封单金额
	limitCountRe  = regexp.MustCompile(`(\d+)只?[股家].*?涨停`)
	limitAmountRe = regexp.MustCompile(`封单.*?(\d+\.?\d*)([万亿])`)
)

// 「XX概念/板块/主题 + 涨跌动词」模板，可捕获词典之外的概念
var conceptPatternRes = []*regexp.Regexp{
	regexp.MustCompile(`([\p{Han}]+?)概念(?:上涨|涨|跌|回调|活跃|异动)`),
	regexp.MustCompile(`([\p{Han}]+?)板块(?:上涨|涨|跌|回调|活跃|异动)`),
	regexp.MustCompile(`([\p{Han}]+?)主题(?:上涨|涨|跌|回调|活跃|异动)`),
}

var (
	segOnce        sync.Once
	seg            gse.Segmenter
	conceptDictSet map[string]struct{}
)

// segmenter 延迟初始化分词器，概念词典以高词频注入保证整词切分
func segmenter() *gse.Segmenter {
	segOnce.Do(func() {
		if err := seg.LoadDict(); err != nil {
			log.Printf("加载分词词典失败: %v", err)
		}
		conceptDictSet = make(map[string]struct{}, len(conceptDict))
		for _, term := range conceptDict {
			conceptDictSet[term] = struct{}{}
			seg.AddToken(term, 100000)
		}
	})
	return &seg
}

// Extract 从新闻标题与正文中提取实体
// 全函数：任意字符串输入都返回完整EntityBag，空输入得到全空结果
func Extract(title, content string) model.EntityBag {
	fullText := title + " " + content

	return model.EntityBag{
		Stocks:           extractStocks(fullText),
		Sectors:          []string{},
		Concepts:         extractConcepts(fullText),
		FundTypes:        matchCategories(fullText, fundCategories),
		MarketStatus:     matchCategories(fullText, marketStatusCategories),
		IsMarketOverview: containsAny(title, marketOverviewKeywords),
		IsLimitUpRelated: containsAny(title, limitUpTitleKeywords),
		LimitData:        extractLimitData(fullText),
	}
}

// extractStocks 先提取「名称(代码)」配对，再补充裸代码
// 按代码去重，保持首次出现顺序
func extractStocks(fullText string) []model.StockRef {
	stocks := make([]model.StockRef, 0, 4)
	seen := make(map[string]bool)

	for _, m := range namedStockRe.FindAllStringSubmatch(fullText, -1) {
		name, code := m[1], m[2]
		if seen[code] {
			continue
		}
		seen[code] = true
		stocks = append(stocks, model.StockRef{Code: code, Name: name})
	}

	for _, code := range bareCodeRe.FindAllString(fullText, -1) {
		if seen[code] {
			continue
		}
		seen[code] = true
		stocks = append(stocks, model.StockRef{Code: code})
	}

	return stocks
}

// extractConcepts 词典命中 + 模板匹配，保持首次出现顺序
func extractConcepts(fullText string) []string {
	concepts := make([]string, 0, 4)
	seen := make(map[string]bool)

	for _, token := range segmenter().Cut(fullText, true) {
		if _, ok := conceptDictSet[token]; !ok || seen[token] {
			continue
		}
		seen[token] = true
		concepts = append(concepts, token)
	}

	for _, re := range conceptPatternRes {
		for _, m := range re.FindAllStringSubmatch(fullText, -1) {
			name := m[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			concepts = append(concepts, name)
		}
	}

	return concepts
}

// matchCategories 按类目关键词表扫描全文，每个类目最多输出一次
func matchCategories(fullText string, categories []keywordCategory) []string {
	matched := make([]string, 0, len(categories))
	for _, cat := range categories {
		if containsAny(fullText, cat.Keywords) {
			matched = append(matched, cat.Name)
		}
	}
	return matched
}

// extractLimitData 提取涨停家数与封单金额，单位归一化到元
// 未命中的键保持nil，序列化时省略
func extractLimitData(fullText string) model.LimitData {
	var ld model.LimitData

	if m := limitCountRe.FindStringSubmatch(fullText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			ld.Count = &n
		}
	}

	if m := limitAmountRe.FindStringSubmatch(fullText); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			if m[2] == "万" {
				v *= 10000
			} else {
				v *= 100000000
			}
			ld.Amount = &v
		}
	}

	return ld
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
