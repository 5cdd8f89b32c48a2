// pkg/enrichment/keywords.go
package enrichment

import (
	"log"
	"sync"
	"unicode/utf8"

	"github.com/go-ego/gse"
	"github.com/go-ego/gse/hmm/extracker"
)

// stopwordSet 关键词停用词表
var stopwordSet = buildStopwordSet([]string{
	"的", "了", "是", "在", "和", "有", "与", "为", "将", "被",
	"从", "到", "对", "以", "及", "等", "或", "就", "都", "而",
	"但", "于", "上", "下", "中", "后", "前",
	"今日", "昨日", "公司", "表示", "相关",
})

func buildStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var (
	tagExtOnce sync.Once
	tagExt     extracker.TagExtracter
)

// tagExtracter 延迟初始化TF-IDF关键词提取器
func tagExtracter() *extracker.TagExtracter {
	tagExtOnce.Do(func() {
		var seg gse.Segmenter
		if err := seg.LoadDict(); err != nil {
			log.Printf("加载分词词典失败: %v", err)
		}
		tagExt.WithGse(seg)
		if err := tagExt.LoadIdf(); err != nil {
			log.Printf("加载IDF词频失败: %v", err)
		}
	})
	return &tagExt
}

// extractKeywords 提取最多topN个加权关键词
// 过滤停用词与长度不足2个字符的词
func extractKeywords(text string, topN int) ([]string, map[string]float64) {
	keywords := make([]string, 0, topN)
	weights := make(map[string]float64, topN)

	for _, s := range tagExtracter().ExtractTags(text, topN) {
		word := s.Text
		if _, stop := stopwordSet[word]; stop {
			continue
		}
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		keywords = append(keywords, word)
		weights[word] = s.Weight
	}

	return keywords, weights
}
