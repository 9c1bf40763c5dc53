package diagserver

// labels is the fixed set of crop-disease classes the analysis endpoint can
// report, in training order.
var labels = []string{
	"Chili__healthy",
	"Chili__leaf curl",
	"Chili__leaf spot",
	"Chili__whitefly",
	"Chili__yellowish",
	"Healthy Rice Leaf",
	"Rice_Bacterial Leaf Blight",
	"Rice_Brown Spot",
	"Rice_Leaf blast",
	"Rice_Leaf scald",
	"Rice_Sheath Blight",
	"Tomato__bacterial_spot",
	"Tomato__healthy",
	"Tomato__late_blight",
	"Tomato__septoria_leaf_spot",
	"Wheat__brown_rust",
	"Wheat__healthy",
	"Wheat__septoria",
	"Wheat__yellow_rust",
}
