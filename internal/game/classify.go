package game

import (
	"strconv"
	"strings"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// codeTable is a per-game classifier: excluded codes and code -> bucket.
type codeTable struct {
	skip    map[int]bool
	buckets map[int]domain.Bucket
	// fallback classifies codes missing from buckets by detail title
	fallback func(title string) domain.Bucket
}

func (t codeTable) classify(code int, title string) Classification {
	if t.skip[code] {
		return Classification{Skip: true, Code: code, Key: domain.CollectionKey(code)}
	}
	bucket, ok := t.buckets[code]
	if !ok {
		bucket = t.fallback(title)
	}
	return Classification{Code: code, Key: domain.CollectionKey(code), Bucket: bucket}
}

// wishTitleBucket files Genshin banners the way the wiki categories do.
func wishTitleBucket(title string) domain.Bucket {
	switch {
	case strings.Contains(title, TitleBeginnersWish), strings.Contains(title, TitleWanderlustInvocation):
		return domain.BucketPermanent
	case strings.Contains(title, TitleEpitomeInvocation):
		return domain.BucketWeapon
	default:
		return domain.BucketCharacter
	}
}

func warpTitleBucket(title string) domain.Bucket {
	if strings.Contains(title, TitleBrilliantFixation) {
		return domain.BucketLightcone
	}
	return domain.BucketCharacter
}

func channelTitleBucket(string) domain.Bucket {
	return domain.BucketCharacter
}

// ZenlessCode extracts the meaningful prefix of a Zenless type code: the first
// digit of a four-digit code, otherwise the first two digits.
func ZenlessCode(raw string) int {
	raw = strings.TrimSpace(raw)
	prefix := raw
	if len(raw) == ZenlessWideCodeWidth {
		prefix = raw[:1]
	} else if len(raw) > 2 {
		prefix = raw[:2]
	}
	code, err := strconv.Atoi(prefix)
	if err != nil {
		return -1
	}
	return code
}
