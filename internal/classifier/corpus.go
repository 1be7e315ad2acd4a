package classifier

// Categories is the closed set of labels the model can produce, in training
// order. CategoryUncategorized is the fallback and is never trained.
var Categories = []string{
	"News",
	"Shopping",
	"Education",
	"Entertainment",
	"Social Media",
	"Technology",
	"Health",
}

// trainingCorpus is the fixed labeled corpus the model is trained on at
// startup. It is intentionally tiny; categorization is best-effort and
// low-stakes.
var trainingCorpus = map[string]string{
	"News":          "latest news headlines politics sports",
	"Shopping":      "best online shopping deals ecommerce store",
	"Education":     "university courses learning education study materials",
	"Entertainment": "movies streaming music online watch entertainment",
	"Social Media":  "social networking site instagram facebook twitter",
	"Technology":    "programming tech AI software coding",
	"Health":        "health medicine fitness doctor hospital",
}
