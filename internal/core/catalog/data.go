package catalog

// 靜態參考資料。來源資料裡有重複 id 的條目（同一食材出現在兩個分類），
// 建目錄時以 id 去重、保留最後一筆定義。

// defaultUnits 內建單位表
var defaultUnits = []Unit{
	{ID: "cup", Name: "cup", Plural: "cups", Type: MeasureVolume, Aliases: []string{"c", "c."}},
	{ID: "tbsp", Name: "tablespoon", Plural: "tablespoons", Type: MeasureVolume, Aliases: []string{"tbsp", "tbsp.", "tbs", "tbl"}},
	{ID: "tsp", Name: "teaspoon", Plural: "teaspoons", Type: MeasureVolume, Aliases: []string{"tsp", "tsp.", "t"}},
	{ID: "floz", Name: "fluid ounce", Plural: "fluid ounces", Type: MeasureVolume, Aliases: []string{"fl oz", "fl. oz."}},
	{ID: "ml", Name: "milliliter", Plural: "milliliters", Type: MeasureVolume, Aliases: []string{"ml", "ml.", "millilitre", "millilitres"}},
	{ID: "l", Name: "liter", Plural: "liters", Type: MeasureVolume, Aliases: []string{"l", "litre", "litres"}},
	{ID: "pt", Name: "pint", Plural: "pints", Type: MeasureVolume, Aliases: []string{"pt", "pt."}},
	{ID: "qt", Name: "quart", Plural: "quarts", Type: MeasureVolume, Aliases: []string{"qt", "qt."}},
	{ID: "gal", Name: "gallon", Plural: "gallons", Type: MeasureVolume, Aliases: []string{"gal", "gal."}},
	{ID: "oz", Name: "ounce", Plural: "ounces", Type: MeasureWeight, Aliases: []string{"oz", "oz."}},
	{ID: "lb", Name: "pound", Plural: "pounds", Type: MeasureWeight, Aliases: []string{"lb", "lb.", "lbs", "lbs."}},
	{ID: "g", Name: "gram", Plural: "grams", Type: MeasureWeight, Aliases: []string{"g", "g.", "gr"}},
	{ID: "kg", Name: "kilogram", Plural: "kilograms", Type: MeasureWeight, Aliases: []string{"kg", "kg."}},
	{ID: "pinch", Name: "pinch", Plural: "pinches", Type: MeasureSize, Aliases: []string{}},
	{ID: "dash", Name: "dash", Plural: "dashes", Type: MeasureSize, Aliases: []string{}},
	{ID: "clove", Name: "clove", Plural: "cloves", Type: MeasureCount, Aliases: []string{}},
	{ID: "slice", Name: "slice", Plural: "slices", Type: MeasureCount, Aliases: []string{}},
	{ID: "piece", Name: "piece", Plural: "pieces", Type: MeasureCount, Aliases: []string{}},
	{ID: "stick", Name: "stick", Plural: "sticks", Type: MeasureCount, Aliases: []string{}},
	{ID: "stalk", Name: "stalk", Plural: "stalks", Type: MeasureCount, Aliases: []string{}},
	{ID: "sprig", Name: "sprig", Plural: "sprigs", Type: MeasureCount, Aliases: []string{}},
	{ID: "can", Name: "can", Plural: "cans", Type: MeasureContainer, Aliases: []string{}},
	{ID: "jar", Name: "jar", Plural: "jars", Type: MeasureContainer, Aliases: []string{}},
	{ID: "package", Name: "package", Plural: "packages", Type: MeasureContainer, Aliases: []string{"pkg", "pkg."}},
	{ID: "bag", Name: "bag", Plural: "bags", Type: MeasureContainer, Aliases: []string{}},
	{ID: "bottle", Name: "bottle", Plural: "bottles", Type: MeasureContainer, Aliases: []string{}},
	{ID: "box", Name: "box", Plural: "boxes", Type: MeasureContainer, Aliases: []string{}},
	{ID: "head", Name: "head", Plural: "heads", Type: MeasureCount, Aliases: []string{}},
	{ID: "bunch", Name: "bunch", Plural: "bunches", Type: MeasureCount, Aliases: []string{}},
}

// defaultPreparations 內建處理方式表
var defaultPreparations = []PreparationMethod{
	{ID: "chopped", Name: "chopped", RequiresStep: true},
	{ID: "diced", Name: "diced", RequiresStep: true},
	{ID: "minced", Name: "minced", RequiresStep: true},
	{ID: "sliced", Name: "sliced", RequiresStep: true},
	{ID: "grated", Name: "grated", RequiresStep: true},
	{ID: "shredded", Name: "shredded", RequiresStep: true},
	{ID: "peeled", Name: "peeled", RequiresStep: true},
	{ID: "sifted", Name: "sifted", RequiresStep: true},
	{ID: "crushed", Name: "crushed", RequiresStep: true},
	{ID: "cubed", Name: "cubed", RequiresStep: true},
	{ID: "julienned", Name: "julienned", RequiresStep: true},
	{ID: "beaten", Name: "beaten", RequiresStep: true},
	{ID: "whisked", Name: "whisked", RequiresStep: true},
	{ID: "melted", Name: "melted", RequiresStep: true},
	{ID: "drained", Name: "drained", RequiresStep: true},
	{ID: "rinsed", Name: "rinsed", RequiresStep: true},
	{ID: "trimmed", Name: "trimmed", RequiresStep: true},
	{ID: "toasted", Name: "toasted", RequiresStep: true},
	// 描述狀態，不產生前置步驟
	{ID: "softened", Name: "softened", RequiresStep: false},
	{ID: "room-temperature", Name: "room temperature", RequiresStep: false},
	{ID: "boneless", Name: "boneless", RequiresStep: false},
	{ID: "skinless", Name: "skinless", RequiresStep: false},
	{ID: "fresh", Name: "fresh", RequiresStep: false},
	{ID: "frozen", Name: "frozen", RequiresStep: false},
	{ID: "dried", Name: "dried", RequiresStep: false},
	{ID: "ground", Name: "ground", RequiresStep: false},
	{ID: "cooked", Name: "cooked", RequiresStep: false},
	{ID: "uncooked", Name: "uncooked", RequiresStep: false},
	{ID: "ripe", Name: "ripe", RequiresStep: false},
	{ID: "to-taste", Name: "to taste", RequiresStep: false},
}

// actionVerbs 封閉的動作動詞表：處理方式的過去分詞 → 祈使形。
// 只有列在這裡的處理方式才會合成前置步驟。
var actionVerbs = map[string]string{
	"chopped":   "chop",
	"diced":     "dice",
	"minced":    "mince",
	"sliced":    "slice",
	"grated":    "grate",
	"shredded":  "shred",
	"peeled":    "peel",
	"sifted":    "sift",
	"crushed":   "crush",
	"cubed":     "cube",
	"julienned": "julienne",
	"beaten":    "beat",
	"whisked":   "whisk",
	"melted":    "melt",
	"drained":   "drain",
	"rinsed":    "rinse",
	"trimmed":   "trim",
	"toasted":   "toast",
}

// formWords 形狀描述詞。長得像動詞但描述的是成品形狀而非動作
//（"2 apples, halves" 不是叫人去「halve」），優先於動作表檢查。
var formWords = map[string]bool{
	"half":      true,
	"halves":    true,
	"halved":    true,
	"quarter":   true,
	"quarters":  true,
	"quartered": true,
	"thirds":    true,
	"eighths":   true,
	"pieces":    true,
	"chunks":    true,
	"wedges":    true,
	"strips":    true,
	"rounds":    true,
	"ribbons":   true,
	"florets":   true,
}

// defaultIngredients 內建食材表
var defaultIngredients = []CatalogIngredient{
	// 烘焙
	{ID: "flour", Name: "flour", Plural: "flour", Category: "baking", CommonUnits: []string{"cup", "tbsp", "g"}, CommonPreparations: []string{"sifted"}, SearchTerms: []string{"all-purpose flour", "all purpose flour", "plain flour", "bread flour"}},
	{ID: "sugar", Name: "sugar", Plural: "sugar", Category: "baking", CommonUnits: []string{"cup", "tbsp", "tsp", "g"}, SearchTerms: []string{"granulated sugar", "white sugar", "caster sugar"}},
	{ID: "brown-sugar", Name: "brown sugar", Plural: "brown sugar", Category: "baking", CommonUnits: []string{"cup", "tbsp"}, SearchTerms: []string{"light brown sugar", "dark brown sugar"}},
	{ID: "powdered-sugar", Name: "powdered sugar", Plural: "powdered sugar", Category: "baking", CommonUnits: []string{"cup"}, CommonPreparations: []string{"sifted"}, SearchTerms: []string{"confectioners sugar", "icing sugar"}},
	{ID: "baking-soda", Name: "baking soda", Plural: "baking soda", Category: "baking", CommonUnits: []string{"tsp"}, SearchTerms: []string{"bicarbonate of soda"}},
	{ID: "baking-powder", Name: "baking powder", Plural: "baking powder", Category: "baking", CommonUnits: []string{"tsp"}},
	{ID: "yeast", Name: "yeast", Plural: "yeast", Category: "baking", CommonUnits: []string{"tsp", "package"}, SearchTerms: []string{"active dry yeast", "instant yeast"}},
	{ID: "cornstarch", Name: "cornstarch", Plural: "cornstarch", Category: "baking", CommonUnits: []string{"tbsp", "tsp"}, SearchTerms: []string{"corn starch", "cornflour"}},
	{ID: "cocoa-powder", Name: "cocoa powder", Plural: "cocoa powder", Category: "baking", CommonUnits: []string{"cup", "tbsp"}, CommonPreparations: []string{"sifted"}, SearchTerms: []string{"cocoa", "unsweetened cocoa"}},
	{ID: "chocolate-chips", Name: "chocolate chips", Plural: "chocolate chips", Category: "baking", CommonUnits: []string{"cup", "bag"}, SearchTerms: []string{"chocolate chip", "semisweet chips"}},
	{ID: "vanilla", Name: "vanilla", Plural: "vanilla", Category: "baking", CommonUnits: []string{"tsp", "tbsp"}, SearchTerms: []string{"vanilla extract", "pure vanilla extract"}},
	{ID: "honey", Name: "honey", Plural: "honey", Category: "baking", CommonUnits: []string{"cup", "tbsp", "tsp"}},
	{ID: "maple-syrup", Name: "maple syrup", Plural: "maple syrup", Category: "baking", CommonUnits: []string{"cup", "tbsp"}, SearchTerms: []string{"syrup"}},
	{ID: "oats", Name: "oats", Plural: "oats", Category: "baking", CommonUnits: []string{"cup"}, SearchTerms: []string{"rolled oats", "old-fashioned oats", "oatmeal"}},

	// 乳製品與蛋
	{ID: "butter", Name: "butter", Plural: "butter", Category: "dairy", CommonUnits: []string{"cup", "tbsp", "stick"}, CommonPreparations: []string{"softened", "melted"}, SearchTerms: []string{"unsalted butter", "salted butter"}},
	{ID: "milk", Name: "milk", Plural: "milk", Category: "dairy", CommonUnits: []string{"cup", "tbsp", "ml"}, SearchTerms: []string{"whole milk", "skim milk", "2% milk"}},
	{ID: "egg", Name: "egg", Plural: "eggs", Category: "dairy", CommonUnits: []string{}, CommonPreparations: []string{"beaten", "whisked"}, SearchTerms: []string{"large egg", "large eggs", "egg yolk", "egg white"}},
	{ID: "cheese", Name: "cheese", Plural: "cheese", Category: "dairy", CommonUnits: []string{"cup", "oz"}, CommonPreparations: []string{"grated", "shredded"}},
	{ID: "cheddar", Name: "cheddar cheese", Plural: "cheddar cheese", Category: "dairy", CommonUnits: []string{"cup", "oz"}, CommonPreparations: []string{"shredded", "grated"}, SearchTerms: []string{"cheddar", "sharp cheddar"}},
	{ID: "parmesan", Name: "parmesan cheese", Plural: "parmesan cheese", Category: "dairy", CommonUnits: []string{"cup", "tbsp", "oz"}, CommonPreparations: []string{"grated"}, SearchTerms: []string{"parmesan", "parmigiano"}},
	{ID: "mozzarella", Name: "mozzarella cheese", Plural: "mozzarella cheese", Category: "dairy", CommonUnits: []string{"cup", "oz"}, CommonPreparations: []string{"shredded", "sliced"}, SearchTerms: []string{"mozzarella"}},
	{ID: "cream-cheese", Name: "cream cheese", Plural: "cream cheese", Category: "dairy", CommonUnits: []string{"oz", "package"}, CommonPreparations: []string{"softened"}},
	{ID: "sour-cream", Name: "sour cream", Plural: "sour cream", Category: "dairy", CommonUnits: []string{"cup", "tbsp"}},
	{ID: "heavy-cream", Name: "heavy cream", Plural: "heavy cream", Category: "dairy", CommonUnits: []string{"cup", "tbsp", "ml"}, SearchTerms: []string{"heavy whipping cream", "whipping cream", "cream"}},
	{ID: "yogurt", Name: "yogurt", Plural: "yogurt", Category: "dairy", CommonUnits: []string{"cup", "tbsp"}, SearchTerms: []string{"greek yogurt", "plain yogurt"}},

	// 油與調味
	{ID: "olive-oil", Name: "olive oil", Plural: "olive oil", Category: "pantry", CommonUnits: []string{"tbsp", "tsp", "cup"}, SearchTerms: []string{"extra virgin olive oil", "evoo"}},
	{ID: "vegetable-oil", Name: "vegetable oil", Plural: "vegetable oil", Category: "pantry", CommonUnits: []string{"tbsp", "cup"}, SearchTerms: []string{"canola oil", "oil"}},
	{ID: "sesame-oil", Name: "sesame oil", Plural: "sesame oil", Category: "pantry", CommonUnits: []string{"tbsp", "tsp"}},
	{ID: "salt", Name: "salt", Plural: "salt", Category: "seasoning", CommonUnits: []string{"tsp", "tbsp", "pinch"}, SearchTerms: []string{"kosher salt", "sea salt", "table salt"}},
	{ID: "pepper", Name: "pepper", Plural: "pepper", Category: "seasoning", CommonUnits: []string{"tsp", "pinch"}, SearchTerms: []string{"black pepper", "ground black pepper", "white pepper"}},
	{ID: "soy-sauce", Name: "soy sauce", Plural: "soy sauce", Category: "pantry", CommonUnits: []string{"tbsp", "tsp", "cup"}},
	{ID: "vinegar", Name: "vinegar", Plural: "vinegar", Category: "pantry", CommonUnits: []string{"tbsp", "tsp", "cup"}, SearchTerms: []string{"white vinegar", "apple cider vinegar", "balsamic vinegar", "rice vinegar"}},
	{ID: "worcestershire", Name: "worcestershire sauce", Plural: "worcestershire sauce", Category: "pantry", CommonUnits: []string{"tbsp", "tsp"}, SearchTerms: []string{"worcestershire"}},
	{ID: "mustard", Name: "mustard", Plural: "mustard", Category: "pantry", CommonUnits: []string{"tbsp", "tsp"}, SearchTerms: []string{"dijon mustard", "yellow mustard"}},
	{ID: "ketchup", Name: "ketchup", Plural: "ketchup", Category: "pantry", CommonUnits: []string{"tbsp", "cup"}},
	{ID: "mayonnaise", Name: "mayonnaise", Plural: "mayonnaise", Category: "pantry", CommonUnits: []string{"tbsp", "cup"}, SearchTerms: []string{"mayo"}},

	// 香料與香草
	{ID: "cinnamon", Name: "cinnamon", Plural: "cinnamon", Category: "spice", CommonUnits: []string{"tsp", "tbsp"}, SearchTerms: []string{"ground cinnamon"}},
	{ID: "nutmeg", Name: "nutmeg", Plural: "nutmeg", Category: "spice", CommonUnits: []string{"tsp", "pinch"}, SearchTerms: []string{"ground nutmeg"}},
	{ID: "ginger", Name: "ginger", Plural: "ginger", Category: "spice", CommonUnits: []string{"tsp", "tbsp"}, CommonPreparations: []string{"grated", "minced"}, SearchTerms: []string{"fresh ginger", "ground ginger"}},
	{ID: "cumin", Name: "cumin", Plural: "cumin", Category: "spice", CommonUnits: []string{"tsp", "tbsp"}, SearchTerms: []string{"ground cumin"}},
	{ID: "paprika", Name: "paprika", Plural: "paprika", Category: "spice", CommonUnits: []string{"tsp", "tbsp"}, SearchTerms: []string{"smoked paprika"}},
	{ID: "chili-powder", Name: "chili powder", Plural: "chili powder", Category: "spice", CommonUnits: []string{"tsp", "tbsp"}, SearchTerms: []string{"chilli powder"}},
	{ID: "cayenne", Name: "cayenne pepper", Plural: "cayenne pepper", Category: "spice", CommonUnits: []string{"tsp", "pinch"}, SearchTerms: []string{"cayenne"}},
	{ID: "oregano", Name: "oregano", Plural: "oregano", Category: "herb", CommonUnits: []string{"tsp", "tbsp"}, SearchTerms: []string{"dried oregano"}},
	{ID: "basil", Name: "basil", Plural: "basil", Category: "herb", CommonUnits: []string{"tsp", "tbsp", "cup"}, CommonPreparations: []string{"chopped"}, SearchTerms: []string{"fresh basil", "dried basil", "basil leaves"}},
	{ID: "thyme", Name: "thyme", Plural: "thyme", Category: "herb", CommonUnits: []string{"tsp", "sprig"}, SearchTerms: []string{"fresh thyme", "dried thyme"}},
	{ID: "rosemary", Name: "rosemary", Plural: "rosemary", Category: "herb", CommonUnits: []string{"tsp", "sprig"}, SearchTerms: []string{"fresh rosemary"}},
	{ID: "parsley", Name: "parsley", Plural: "parsley", Category: "herb", CommonUnits: []string{"tbsp", "cup"}, CommonPreparations: []string{"chopped"}, SearchTerms: []string{"fresh parsley", "flat-leaf parsley"}},
	{ID: "cilantro", Name: "cilantro", Plural: "cilantro", Category: "herb", CommonUnits: []string{"tbsp", "cup"}, CommonPreparations: []string{"chopped"}, SearchTerms: []string{"coriander", "fresh cilantro"}},
	{ID: "bay-leaf", Name: "bay leaf", Plural: "bay leaves", Category: "herb", CommonUnits: []string{}, SearchTerms: []string{"bay leaves"}},

	// 蔬果
	{ID: "onion", Name: "onion", Plural: "onions", Category: "produce", CommonUnits: []string{"cup"}, CommonPreparations: []string{"chopped", "diced", "sliced", "minced"}, SearchTerms: []string{"yellow onion", "red onion", "white onion"}},
	{ID: "green-onion", Name: "green onion", Plural: "green onions", Category: "produce", CommonUnits: []string{"cup", "bunch"}, CommonPreparations: []string{"chopped", "sliced"}, SearchTerms: []string{"scallion", "scallions", "spring onion"}},
	{ID: "garlic", Name: "garlic", Plural: "garlic", Category: "produce", CommonUnits: []string{"clove", "tsp", "head"}, CommonPreparations: []string{"minced", "crushed", "chopped"}, SearchTerms: []string{"garlic clove", "garlic cloves"}},
	{ID: "tomato", Name: "tomato", Plural: "tomatoes", Category: "produce", CommonUnits: []string{"cup", "can"}, CommonPreparations: []string{"diced", "chopped", "sliced"}, SearchTerms: []string{"roma tomato", "cherry tomatoes", "diced tomatoes"}},
	{ID: "potato", Name: "potato", Plural: "potatoes", Category: "produce", CommonUnits: []string{"cup", "lb"}, CommonPreparations: []string{"peeled", "diced", "cubed"}, SearchTerms: []string{"russet potato", "yukon gold"}},
	{ID: "sweet-potato", Name: "sweet potato", Plural: "sweet potatoes", Category: "produce", CommonUnits: []string{"cup", "lb"}, CommonPreparations: []string{"peeled", "cubed"}},
	{ID: "carrot", Name: "carrot", Plural: "carrots", Category: "produce", CommonUnits: []string{"cup", "lb"}, CommonPreparations: []string{"chopped", "sliced", "grated", "peeled"}},
	{ID: "celery", Name: "celery", Plural: "celery", Category: "produce", CommonUnits: []string{"cup", "stalk"}, CommonPreparations: []string{"chopped", "diced", "sliced"}, SearchTerms: []string{"celery stalk", "celery stalks"}},
	{ID: "bell-pepper", Name: "bell pepper", Plural: "bell peppers", Category: "produce", CommonUnits: []string{"cup"}, CommonPreparations: []string{"chopped", "diced", "sliced"}, SearchTerms: []string{"red bell pepper", "green bell pepper", "red pepper", "green pepper"}},
	{ID: "mushroom", Name: "mushroom", Plural: "mushrooms", Category: "produce", CommonUnits: []string{"cup", "oz", "lb"}, CommonPreparations: []string{"sliced", "chopped"}, SearchTerms: []string{"button mushrooms", "cremini", "portobello"}},
	{ID: "spinach", Name: "spinach", Plural: "spinach", Category: "produce", CommonUnits: []string{"cup", "oz", "bag"}, CommonPreparations: []string{"chopped", "rinsed"}, SearchTerms: []string{"baby spinach", "fresh spinach"}},
	{ID: "lettuce", Name: "lettuce", Plural: "lettuce", Category: "produce", CommonUnits: []string{"cup", "head"}, CommonPreparations: []string{"shredded", "chopped"}, SearchTerms: []string{"romaine", "iceberg lettuce"}},
	{ID: "cucumber", Name: "cucumber", Plural: "cucumbers", Category: "produce", CommonUnits: []string{"cup"}, CommonPreparations: []string{"sliced", "diced", "peeled"}},
	{ID: "zucchini", Name: "zucchini", Plural: "zucchini", Category: "produce", CommonUnits: []string{"cup"}, CommonPreparations: []string{"sliced", "diced", "grated"}, SearchTerms: []string{"courgette"}},
	{ID: "broccoli", Name: "broccoli", Plural: "broccoli", Category: "produce", CommonUnits: []string{"cup", "head"}, CommonPreparations: []string{"chopped"}, SearchTerms: []string{"broccoli florets"}},
	{ID: "cauliflower", Name: "cauliflower", Plural: "cauliflower", Category: "produce", CommonUnits: []string{"cup", "head"}, CommonPreparations: []string{"chopped"}, SearchTerms: []string{"cauliflower florets"}},
	{ID: "corn", Name: "corn", Plural: "corn", Category: "produce", CommonUnits: []string{"cup", "can"}, SearchTerms: []string{"corn kernels", "sweet corn"}},
	{ID: "peas", Name: "peas", Plural: "peas", Category: "produce", CommonUnits: []string{"cup", "bag"}, SearchTerms: []string{"green peas", "frozen peas"}},
	{ID: "green-beans", Name: "green beans", Plural: "green beans", Category: "produce", CommonUnits: []string{"cup", "lb"}, CommonPreparations: []string{"trimmed"}, SearchTerms: []string{"string beans"}},
	{ID: "lemon", Name: "lemon", Plural: "lemons", Category: "produce", CommonUnits: []string{"tbsp", "tsp"}, SearchTerms: []string{"lemon juice", "lemon zest"}},
	{ID: "lime", Name: "lime", Plural: "limes", Category: "produce", CommonUnits: []string{"tbsp", "tsp"}, SearchTerms: []string{"lime juice", "lime zest"}},
	{ID: "orange", Name: "orange", Plural: "oranges", Category: "produce", CommonUnits: []string{"cup", "tbsp"}, SearchTerms: []string{"orange juice", "orange zest"}},
	{ID: "apple", Name: "apple", Plural: "apples", Category: "produce", CommonUnits: []string{"cup"}, CommonPreparations: []string{"peeled", "sliced", "diced"}, SearchTerms: []string{"granny smith", "honeycrisp"}},
	{ID: "banana", Name: "banana", Plural: "bananas", Category: "produce", CommonUnits: []string{"cup"}, CommonPreparations: []string{"sliced"}, SearchTerms: []string{"ripe banana", "ripe bananas"}},
	{ID: "strawberry", Name: "strawberry", Plural: "strawberries", Category: "produce", CommonUnits: []string{"cup", "lb"}, CommonPreparations: []string{"sliced"}, SearchTerms: []string{"strawberries"}},
	{ID: "blueberry", Name: "blueberry", Plural: "blueberries", Category: "produce", CommonUnits: []string{"cup"}, SearchTerms: []string{"blueberries"}},
	{ID: "avocado", Name: "avocado", Plural: "avocados", Category: "produce", CommonUnits: []string{"cup"}, CommonPreparations: []string{"diced", "sliced"}},

	// 蛋白質
	{ID: "chicken", Name: "chicken", Plural: "chicken", Category: "protein", CommonUnits: []string{"lb", "oz", "cup"}, CommonPreparations: []string{"diced", "cubed", "shredded"}, SearchTerms: []string{"chicken breast", "chicken breasts", "chicken thigh", "chicken thighs"}},
	{ID: "beef", Name: "beef", Plural: "beef", Category: "protein", CommonUnits: []string{"lb", "oz"}, CommonPreparations: []string{"cubed", "sliced"}, SearchTerms: []string{"beef chuck", "stew meat", "steak"}},
	{ID: "ground-beef", Name: "ground beef", Plural: "ground beef", Category: "protein", CommonUnits: []string{"lb", "oz"}, SearchTerms: []string{"minced beef", "hamburger meat"}},
	{ID: "pork", Name: "pork", Plural: "pork", Category: "protein", CommonUnits: []string{"lb", "oz"}, CommonPreparations: []string{"sliced", "cubed"}, SearchTerms: []string{"pork chop", "pork chops", "pork loin", "pork shoulder"}},
	{ID: "bacon", Name: "bacon", Plural: "bacon", Category: "protein", CommonUnits: []string{"slice", "lb"}, CommonPreparations: []string{"chopped"}, SearchTerms: []string{"bacon strips"}},
	{ID: "ham", Name: "ham", Plural: "ham", Category: "protein", CommonUnits: []string{"cup", "oz", "slice"}, CommonPreparations: []string{"diced", "cubed"}},
	{ID: "turkey", Name: "turkey", Plural: "turkey", Category: "protein", CommonUnits: []string{"lb", "cup"}, CommonPreparations: []string{"shredded"}, SearchTerms: []string{"ground turkey", "turkey breast"}},
	{ID: "sausage", Name: "sausage", Plural: "sausages", Category: "protein", CommonUnits: []string{"lb", "oz"}, CommonPreparations: []string{"sliced"}, SearchTerms: []string{"italian sausage"}},
	{ID: "salmon", Name: "salmon", Plural: "salmon", Category: "protein", CommonUnits: []string{"lb", "oz"}, SearchTerms: []string{"salmon fillet", "salmon fillets"}},
	{ID: "tuna", Name: "tuna", Plural: "tuna", Category: "protein", CommonUnits: []string{"can", "oz"}, CommonPreparations: []string{"drained"}, SearchTerms: []string{"canned tuna"}},
	{ID: "shrimp", Name: "shrimp", Plural: "shrimp", Category: "protein", CommonUnits: []string{"lb", "oz"}, CommonPreparations: []string{"peeled"}, SearchTerms: []string{"prawns"}},
	{ID: "tofu", Name: "tofu", Plural: "tofu", Category: "protein", CommonUnits: []string{"oz", "package"}, CommonPreparations: []string{"cubed", "drained"}, SearchTerms: []string{"firm tofu", "extra firm tofu"}},

	// 穀物與豆類
	{ID: "rice", Name: "rice", Plural: "rice", Category: "grain", CommonUnits: []string{"cup"}, CommonPreparations: []string{"rinsed", "cooked"}, SearchTerms: []string{"white rice", "brown rice", "jasmine rice", "basmati rice"}},
	{ID: "pasta", Name: "pasta", Plural: "pasta", Category: "grain", CommonUnits: []string{"oz", "lb", "cup"}, SearchTerms: []string{"spaghetti", "penne", "macaroni", "fettuccine"}},
	{ID: "noodles", Name: "noodles", Plural: "noodles", Category: "grain", CommonUnits: []string{"oz", "package"}, SearchTerms: []string{"egg noodles", "rice noodles", "ramen noodles"}},
	{ID: "bread", Name: "bread", Plural: "bread", Category: "grain", CommonUnits: []string{"slice", "cup"}, CommonPreparations: []string{"toasted", "cubed"}, SearchTerms: []string{"white bread", "sourdough"}},
	{ID: "breadcrumbs", Name: "breadcrumbs", Plural: "breadcrumbs", Category: "grain", CommonUnits: []string{"cup", "tbsp"}, SearchTerms: []string{"bread crumbs", "panko"}},
	{ID: "quinoa", Name: "quinoa", Plural: "quinoa", Category: "grain", CommonUnits: []string{"cup"}, CommonPreparations: []string{"rinsed"}},
	{ID: "tortilla", Name: "tortilla", Plural: "tortillas", Category: "grain", CommonUnits: []string{}, SearchTerms: []string{"flour tortillas", "corn tortillas"}},
	{ID: "black-beans", Name: "black beans", Plural: "black beans", Category: "legume", CommonUnits: []string{"can", "cup"}, CommonPreparations: []string{"drained", "rinsed"}},
	{ID: "kidney-beans", Name: "kidney beans", Plural: "kidney beans", Category: "legume", CommonUnits: []string{"can", "cup"}, CommonPreparations: []string{"drained", "rinsed"}, SearchTerms: []string{"red kidney beans"}},
	{ID: "chickpeas", Name: "chickpeas", Plural: "chickpeas", Category: "legume", CommonUnits: []string{"can", "cup"}, CommonPreparations: []string{"drained", "rinsed"}, SearchTerms: []string{"garbanzo beans"}},
	{ID: "lentils", Name: "lentils", Plural: "lentils", Category: "legume", CommonUnits: []string{"cup"}, CommonPreparations: []string{"rinsed"}, SearchTerms: []string{"red lentils", "green lentils"}},

	// 堅果與其它
	{ID: "almonds", Name: "almonds", Plural: "almonds", Category: "nuts", CommonUnits: []string{"cup", "oz"}, CommonPreparations: []string{"sliced", "toasted", "chopped"}, SearchTerms: []string{"sliced almonds", "slivered almonds"}},
	{ID: "walnuts", Name: "walnuts", Plural: "walnuts", Category: "nuts", CommonUnits: []string{"cup", "oz"}, CommonPreparations: []string{"chopped", "toasted"}},
	{ID: "pecans", Name: "pecans", Plural: "pecans", Category: "nuts", CommonUnits: []string{"cup", "oz"}, CommonPreparations: []string{"chopped", "toasted"}},
	{ID: "peanut-butter", Name: "peanut butter", Plural: "peanut butter", Category: "nuts", CommonUnits: []string{"cup", "tbsp"}, SearchTerms: []string{"creamy peanut butter"}},
	{ID: "water", Name: "water", Plural: "water", Category: "other", CommonUnits: []string{"cup", "tbsp", "ml", "l"}, SearchTerms: []string{"warm water", "cold water"}},
	{ID: "chicken-broth", Name: "chicken broth", Plural: "chicken broth", Category: "other", CommonUnits: []string{"cup", "can", "ml"}, SearchTerms: []string{"chicken stock", "broth"}},
	{ID: "beef-broth", Name: "beef broth", Plural: "beef broth", Category: "other", CommonUnits: []string{"cup", "can"}, SearchTerms: []string{"beef stock"}},
	{ID: "vegetable-broth", Name: "vegetable broth", Plural: "vegetable broth", Category: "other", CommonUnits: []string{"cup", "can"}, SearchTerms: []string{"vegetable stock"}},
	{ID: "tomato-sauce", Name: "tomato sauce", Plural: "tomato sauce", Category: "other", CommonUnits: []string{"can", "cup"}, SearchTerms: []string{"marinara", "pasta sauce"}},
	{ID: "tomato-paste", Name: "tomato paste", Plural: "tomato paste", Category: "other", CommonUnits: []string{"tbsp", "can"}},
	{ID: "coconut-milk", Name: "coconut milk", Plural: "coconut milk", Category: "other", CommonUnits: []string{"can", "cup"}},
	{ID: "wine", Name: "wine", Plural: "wine", Category: "other", CommonUnits: []string{"cup", "tbsp"}, SearchTerms: []string{"white wine", "red wine", "dry white wine"}},
}
