package services

import "github.com/iamomal/nutrivision-backend/models"

// nutritionCatalog holds per-serving reference values for every dish the
// classifier can name. Health score is a 0-100 editorial rating, higher is
// healthier.
var nutritionCatalog = []models.FoodNutrition{
	{FoodName: "apple_pie", Calories: 237, Protein: 2, Carbs: 34, Fat: 11, ServingSize: "1 slice (125g)", HealthScore: 35, Category: "dessert"},
	{FoodName: "baklava", Calories: 334, Protein: 5, Carbs: 29, Fat: 23, ServingSize: "1 piece (70g)", HealthScore: 30, Category: "dessert"},
	{FoodName: "beignets", Calories: 260, Protein: 5, Carbs: 35, Fat: 11, ServingSize: "3 pieces", HealthScore: 25, Category: "dessert"},
	{FoodName: "bread_pudding", Calories: 270, Protein: 6, Carbs: 38, Fat: 10, ServingSize: "1 cup", HealthScore: 35, Category: "dessert"},
	{FoodName: "cannoli", Calories: 380, Protein: 8, Carbs: 42, Fat: 19, ServingSize: "1 cannoli", HealthScore: 30, Category: "dessert"},
	{FoodName: "carrot_cake", Calories: 415, Protein: 5, Carbs: 56, Fat: 19, ServingSize: "1 slice", HealthScore: 35, Category: "dessert"},
	{FoodName: "cheesecake", Calories: 321, Protein: 6, Carbs: 26, Fat: 23, ServingSize: "1 slice", HealthScore: 25, Category: "dessert"},
	{FoodName: "chocolate_cake", Calories: 352, Protein: 5, Carbs: 50, Fat: 14, ServingSize: "1 slice", HealthScore: 30, Category: "dessert"},
	{FoodName: "chocolate_mousse", Calories: 268, Protein: 4, Carbs: 22, Fat: 19, ServingSize: "1 cup", HealthScore: 25, Category: "dessert"},
	{FoodName: "churros", Calories: 312, Protein: 4, Carbs: 42, Fat: 15, ServingSize: "4 pieces", HealthScore: 25, Category: "dessert"},
	{FoodName: "creme_brulee", Calories: 294, Protein: 7, Carbs: 30, Fat: 15, ServingSize: "1 serving", HealthScore: 30, Category: "dessert"},
	{FoodName: "cup_cakes", Calories: 305, Protein: 3, Carbs: 45, Fat: 13, ServingSize: "1 cupcake", HealthScore: 25, Category: "dessert"},
	{FoodName: "donuts", Calories: 292, Protein: 4, Carbs: 35, Fat: 15, ServingSize: "1 donut", HealthScore: 20, Category: "dessert"},
	{FoodName: "frozen_yogurt", Calories: 127, Protein: 4, Carbs: 24, Fat: 2, ServingSize: "1 cup", HealthScore: 55, Category: "dessert"},
	{FoodName: "ice_cream", Calories: 207, Protein: 4, Carbs: 24, Fat: 11, ServingSize: "1 cup", HealthScore: 30, Category: "dessert"},
	{FoodName: "macarons", Calories: 90, Protein: 2, Carbs: 13, Fat: 4, ServingSize: "1 macaron", HealthScore: 35, Category: "dessert"},
	{FoodName: "panna_cotta", Calories: 301, Protein: 4, Carbs: 27, Fat: 20, ServingSize: "1 serving", HealthScore: 30, Category: "dessert"},
	{FoodName: "red_velvet_cake", Calories: 390, Protein: 5, Carbs: 52, Fat: 18, ServingSize: "1 slice", HealthScore: 25, Category: "dessert"},
	{FoodName: "strawberry_shortcake", Calories: 315, Protein: 4, Carbs: 44, Fat: 14, ServingSize: "1 serving", HealthScore: 40, Category: "dessert"},
	{FoodName: "tiramisu", Calories: 240, Protein: 5, Carbs: 29, Fat: 11, ServingSize: "1 serving", HealthScore: 35, Category: "dessert"},
	{FoodName: "breakfast_burrito", Calories: 450, Protein: 20, Carbs: 42, Fat: 21, ServingSize: "1 burrito", HealthScore: 60, Category: "breakfast"},
	{FoodName: "croque_madame", Calories: 512, Protein: 28, Carbs: 35, Fat: 28, ServingSize: "1 sandwich", HealthScore: 50, Category: "breakfast"},
	{FoodName: "eggs_benedict", Calories: 450, Protein: 20, Carbs: 30, Fat: 25, ServingSize: "1 serving", HealthScore: 55, Category: "breakfast"},
	{FoodName: "french_toast", Calories: 280, Protein: 10, Carbs: 35, Fat: 11, ServingSize: "2 slices", HealthScore: 45, Category: "breakfast"},
	{FoodName: "huevos_rancheros", Calories: 380, Protein: 18, Carbs: 35, Fat: 18, ServingSize: "1 serving", HealthScore: 65, Category: "breakfast"},
	{FoodName: "omelette", Calories: 220, Protein: 18, Carbs: 3, Fat: 16, ServingSize: "3 eggs", HealthScore: 70, Category: "breakfast"},
	{FoodName: "pancakes", Calories: 227, Protein: 6, Carbs: 36, Fat: 7, ServingSize: "3 pancakes", HealthScore: 45, Category: "breakfast"},
	{FoodName: "waffles", Calories: 291, Protein: 7, Carbs: 37, Fat: 13, ServingSize: "2 waffles", HealthScore: 45, Category: "breakfast"},
	{FoodName: "beet_salad", Calories: 180, Protein: 4, Carbs: 18, Fat: 11, ServingSize: "1 bowl", HealthScore: 85, Category: "salad"},
	{FoodName: "caesar_salad", Calories: 184, Protein: 6, Carbs: 8, Fat: 15, ServingSize: "1 bowl", HealthScore: 65, Category: "salad"},
	{FoodName: "caprese_salad", Calories: 220, Protein: 11, Carbs: 8, Fat: 16, ServingSize: "1 serving", HealthScore: 80, Category: "salad"},
	{FoodName: "greek_salad", Calories: 150, Protein: 4, Carbs: 8, Fat: 12, ServingSize: "1 bowl", HealthScore: 85, Category: "salad"},
	{FoodName: "seaweed_salad", Calories: 70, Protein: 2, Carbs: 10, Fat: 3, ServingSize: "1 cup", HealthScore: 90, Category: "salad"},
	{FoodName: "baby_back_ribs", Calories: 361, Protein: 27, Carbs: 0, Fat: 28, ServingSize: "4 oz", HealthScore: 55, Category: "main"},
	{FoodName: "beef_carpaccio", Calories: 186, Protein: 22, Carbs: 2, Fat: 10, ServingSize: "4 oz", HealthScore: 75, Category: "main"},
	{FoodName: "beef_tartare", Calories: 220, Protein: 20, Carbs: 3, Fat: 14, ServingSize: "4 oz", HealthScore: 70, Category: "main"},
	{FoodName: "chicken_curry", Calories: 350, Protein: 25, Carbs: 20, Fat: 18, ServingSize: "1 cup", HealthScore: 70, Category: "main"},
	{FoodName: "chicken_quesadilla", Calories: 450, Protein: 25, Carbs: 38, Fat: 22, ServingSize: "1 quesadilla", HealthScore: 60, Category: "main"},
	{FoodName: "chicken_wings", Calories: 290, Protein: 27, Carbs: 0, Fat: 20, ServingSize: "4 wings", HealthScore: 50, Category: "main"},
	{FoodName: "crab_cakes", Calories: 340, Protein: 18, Carbs: 22, Fat: 20, ServingSize: "2 cakes", HealthScore: 65, Category: "main"},
	{FoodName: "filet_mignon", Calories: 278, Protein: 40, Carbs: 0, Fat: 13, ServingSize: "6 oz", HealthScore: 85, Category: "main"},
	{FoodName: "foie_gras", Calories: 462, Protein: 11, Carbs: 1, Fat: 44, ServingSize: "2 oz", HealthScore: 40, Category: "main"},
	{FoodName: "grilled_salmon", Calories: 280, Protein: 39, Carbs: 0, Fat: 13, ServingSize: "6 oz", HealthScore: 95, Category: "main"},
	{FoodName: "peking_duck", Calories: 337, Protein: 19, Carbs: 0, Fat: 28, ServingSize: "4 oz", HealthScore: 60, Category: "main"},
	{FoodName: "pork_chop", Calories: 231, Protein: 39, Carbs: 0, Fat: 7, ServingSize: "6 oz", HealthScore: 75, Category: "main"},
	{FoodName: "prime_rib", Calories: 338, Protein: 36, Carbs: 0, Fat: 21, ServingSize: "6 oz", HealthScore: 70, Category: "main"},
	{FoodName: "scallops", Calories: 137, Protein: 24, Carbs: 6, Fat: 1, ServingSize: "6 oz", HealthScore: 90, Category: "main"},
	{FoodName: "steak", Calories: 271, Protein: 43, Carbs: 0, Fat: 10, ServingSize: "6 oz", HealthScore: 80, Category: "main"},
	{FoodName: "tuna_tartare", Calories: 185, Protein: 26, Carbs: 2, Fat: 8, ServingSize: "4 oz", HealthScore: 85, Category: "main"},
	{FoodName: "bibimbap", Calories: 490, Protein: 20, Carbs: 62, Fat: 18, ServingSize: "1 bowl", HealthScore: 75, Category: "main"},
	{FoodName: "dumplings", Calories: 280, Protein: 12, Carbs: 35, Fat: 10, ServingSize: "6 dumplings", HealthScore: 65, Category: "main"},
	{FoodName: "edamame", Calories: 120, Protein: 11, Carbs: 10, Fat: 5, ServingSize: "1 cup", HealthScore: 90, Category: "appetizer"},
	{FoodName: "fried_rice", Calories: 333, Protein: 8, Carbs: 50, Fat: 11, ServingSize: "1 cup", HealthScore: 55, Category: "main"},
	{FoodName: "gyoza", Calories: 250, Protein: 10, Carbs: 30, Fat: 9, ServingSize: "6 pieces", HealthScore: 65, Category: "appetizer"},
	{FoodName: "hot_and_sour_soup", Calories: 112, Protein: 7, Carbs: 12, Fat: 4, ServingSize: "1 bowl", HealthScore: 70, Category: "soup"},
	{FoodName: "miso_soup", Calories: 84, Protein: 6, Carbs: 8, Fat: 3, ServingSize: "1 bowl", HealthScore: 85, Category: "soup"},
	{FoodName: "pad_thai", Calories: 380, Protein: 15, Carbs: 50, Fat: 12, ServingSize: "1 plate", HealthScore: 65, Category: "main"},
	{FoodName: "pho", Calories: 350, Protein: 20, Carbs: 45, Fat: 8, ServingSize: "1 bowl", HealthScore: 75, Category: "main"},
	{FoodName: "ramen", Calories: 436, Protein: 19, Carbs: 54, Fat: 15, ServingSize: "1 bowl", HealthScore: 60, Category: "main"},
	{FoodName: "sashimi", Calories: 130, Protein: 25, Carbs: 0, Fat: 3, ServingSize: "6 pieces", HealthScore: 95, Category: "main"},
	{FoodName: "spring_rolls", Calories: 140, Protein: 4, Carbs: 20, Fat: 5, ServingSize: "2 rolls", HealthScore: 70, Category: "appetizer"},
	{FoodName: "sushi", Calories: 200, Protein: 9, Carbs: 28, Fat: 5, ServingSize: "6 pieces", HealthScore: 75, Category: "main"},
	{FoodName: "takoyaki", Calories: 180, Protein: 8, Carbs: 22, Fat: 7, ServingSize: "5 balls", HealthScore: 60, Category: "snack"},
	{FoodName: "bruschetta", Calories: 140, Protein: 4, Carbs: 18, Fat: 6, ServingSize: "2 pieces", HealthScore: 70, Category: "appetizer"},
	{FoodName: "escargots", Calories: 180, Protein: 16, Carbs: 4, Fat: 12, ServingSize: "6 snails", HealthScore: 65, Category: "appetizer"},
	{FoodName: "gnocchi", Calories: 250, Protein: 6, Carbs: 45, Fat: 4, ServingSize: "1 cup", HealthScore: 60, Category: "main"},
	{FoodName: "lasagna", Calories: 360, Protein: 18, Carbs: 35, Fat: 16, ServingSize: "1 serving", HealthScore: 60, Category: "main"},
	{FoodName: "paella", Calories: 425, Protein: 25, Carbs: 50, Fat: 13, ServingSize: "1 serving", HealthScore: 70, Category: "main"},
	{FoodName: "ravioli", Calories: 350, Protein: 14, Carbs: 42, Fat: 13, ServingSize: "1 cup", HealthScore: 60, Category: "main"},
	{FoodName: "risotto", Calories: 380, Protein: 8, Carbs: 55, Fat: 13, ServingSize: "1 cup", HealthScore: 55, Category: "main"},
	{FoodName: "spaghetti_bolognese", Calories: 400, Protein: 22, Carbs: 50, Fat: 12, ServingSize: "1 plate", HealthScore: 65, Category: "main"},
	{FoodName: "spaghetti_carbonara", Calories: 480, Protein: 20, Carbs: 52, Fat: 22, ServingSize: "1 plate", HealthScore: 55, Category: "main"},
	{FoodName: "clam_chowder", Calories: 235, Protein: 12, Carbs: 20, Fat: 13, ServingSize: "1 bowl", HealthScore: 60, Category: "soup"},
	{FoodName: "french_onion_soup", Calories: 160, Protein: 8, Carbs: 15, Fat: 8, ServingSize: "1 bowl", HealthScore: 65, Category: "soup"},
	{FoodName: "lobster_bisque", Calories: 260, Protein: 11, Carbs: 14, Fat: 18, ServingSize: "1 bowl", HealthScore: 60, Category: "soup"},
	{FoodName: "mussels", Calories: 172, Protein: 24, Carbs: 7, Fat: 4, ServingSize: "6 oz", HealthScore: 85, Category: "main"},
	{FoodName: "oysters", Calories: 57, Protein: 6, Carbs: 5, Fat: 2, ServingSize: "6 oysters", HealthScore: 80, Category: "appetizer"},
	{FoodName: "club_sandwich", Calories: 590, Protein: 30, Carbs: 50, Fat: 28, ServingSize: "1 sandwich", HealthScore: 55, Category: "main"},
	{FoodName: "fish_and_chips", Calories: 585, Protein: 28, Carbs: 52, Fat: 30, ServingSize: "1 serving", HealthScore: 40, Category: "main"},
	{FoodName: "grilled_cheese_sandwich", Calories: 440, Protein: 18, Carbs: 40, Fat: 24, ServingSize: "1 sandwich", HealthScore: 45, Category: "main"},
	{FoodName: "hamburger", Calories: 354, Protein: 20, Carbs: 30, Fat: 17, ServingSize: "1 burger", HealthScore: 50, Category: "main"},
	{FoodName: "hot_dog", Calories: 314, Protein: 12, Carbs: 24, Fat: 18, ServingSize: "1 hot dog", HealthScore: 35, Category: "main"},
	{FoodName: "lobster_roll_sandwich", Calories: 436, Protein: 25, Carbs: 42, Fat: 18, ServingSize: "1 roll", HealthScore: 65, Category: "main"},
	{FoodName: "pulled_pork_sandwich", Calories: 415, Protein: 35, Carbs: 38, Fat: 13, ServingSize: "1 sandwich", HealthScore: 60, Category: "main"},
	{FoodName: "cheese_plate", Calories: 340, Protein: 22, Carbs: 6, Fat: 26, ServingSize: "1 serving", HealthScore: 55, Category: "appetizer"},
	{FoodName: "deviled_eggs", Calories: 124, Protein: 6, Carbs: 1, Fat: 10, ServingSize: "2 halves", HealthScore: 60, Category: "appetizer"},
	{FoodName: "falafel", Calories: 333, Protein: 13, Carbs: 32, Fat: 18, ServingSize: "5 balls", HealthScore: 70, Category: "main"},
	{FoodName: "french_fries", Calories: 312, Protein: 4, Carbs: 41, Fat: 15, ServingSize: "1 serving", HealthScore: 35, Category: "side"},
	{FoodName: "fried_calamari", Calories: 295, Protein: 15, Carbs: 18, Fat: 18, ServingSize: "1 cup", HealthScore: 50, Category: "appetizer"},
	{FoodName: "garlic_bread", Calories: 186, Protein: 4, Carbs: 21, Fat: 9, ServingSize: "2 slices", HealthScore: 40, Category: "side"},
	{FoodName: "guacamole", Calories: 150, Protein: 2, Carbs: 8, Fat: 14, ServingSize: "1/2 cup", HealthScore: 85, Category: "dip"},
	{FoodName: "hummus", Calories: 166, Protein: 8, Carbs: 14, Fat: 10, ServingSize: "1/2 cup", HealthScore: 80, Category: "dip"},
	{FoodName: "macaroni_and_cheese", Calories: 310, Protein: 11, Carbs: 36, Fat: 13, ServingSize: "1 cup", HealthScore: 45, Category: "main"},
	{FoodName: "nachos", Calories: 346, Protein: 9, Carbs: 36, Fat: 19, ServingSize: "1 serving", HealthScore: 40, Category: "snack"},
	{FoodName: "onion_rings", Calories: 276, Protein: 4, Carbs: 31, Fat: 16, ServingSize: "8 rings", HealthScore: 30, Category: "side"},
	{FoodName: "poutine", Calories: 510, Protein: 12, Carbs: 54, Fat: 28, ServingSize: "1 serving", HealthScore: 35, Category: "main"},
	{FoodName: "samosa", Calories: 252, Protein: 5, Carbs: 28, Fat: 13, ServingSize: "1 samosa", HealthScore: 50, Category: "snack"},
	{FoodName: "tacos", Calories: 226, Protein: 13, Carbs: 18, Fat: 12, ServingSize: "2 tacos", HealthScore: 65, Category: "main"},
	{FoodName: "ceviche", Calories: 140, Protein: 18, Carbs: 10, Fat: 4, ServingSize: "1 cup", HealthScore: 85, Category: "appetizer"},
	{FoodName: "pizza", Calories: 285, Protein: 12, Carbs: 36, Fat: 10, ServingSize: "2 slices", HealthScore: 45, Category: "main"},
	{FoodName: "shrimp_and_grits", Calories: 390, Protein: 24, Carbs: 42, Fat: 14, ServingSize: "1 serving", HealthScore: 65, Category: "main"},
}
