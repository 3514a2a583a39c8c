package storage

// アップロードを受け付けるバケットの固定リスト。
// ここに無いバケット名への書き込み要求は 400 で拒否する。
var allowedBuckets = map[string]bool{
	"profile-image":      true,
	"project-images":     true,
	"experience-images":  true,
	"service-images":     true,
	"achievement-images": true,
	"general-images":     true,
}

// IsAllowedBucket はバケット名が許可リストに含まれるか判定する
func IsAllowedBucket(bucket string) bool {
	return allowedBuckets[bucket]
}

// bucketByContext はエンティティ名 → バケット名の対応表
var bucketByContext = map[string]string{
	"projects":         "project-images",
	"achievements":     "achievement-images",
	"services":         "service-images",
	"experience":       "experience-images",
	"about":            "profile-image",
	"profile":          "profile-image",
	"skills":           "general-images",
	"skill-categories": "general-images",
	"general":          "general-images",
}

// BucketForContext はエンティティ名から保存先バケットを決める。
// 未知のコンテキストは汎用バケットにフォールバックする。
func BucketForContext(context string) string {
	if b, ok := bucketByContext[context]; ok {
		return b
	}
	return "general-images"
}
