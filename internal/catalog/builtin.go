package catalog

// builtin is the compiled-in catalog. Slices are copied out by Builtin, never handed out directly.
var builtin = map[Slot][]FoodItem{
	Breakfast: {
		{Name: "Ragi Porridge (Finger Millet)", Quantity: "1 cup (200g)", Calories: 220, Protein: 6, Carbs: 42, Fats: 3, Fiber: 6, Price: 30, DietType: Veg,
			Recipe: "Roast 1/4 cup ragi flour on a pan, boil 1 cup water, add ragi slowly while stirring to avoid lumps, cook for 8-10 min, add salt & ghee. Serve hot with jaggery or fruit."},
		{Name: "Broken Wheat Upma (Dalia Upma)", Quantity: "1 cup (200g)", Calories: 210, Protein: 7, Carbs: 40, Fats: 4, Fiber: 5, Price: 25, DietType: Veg,
			Recipe: "Roast 1/2 cup broken wheat, temper 1 tbsp oil with mustard seeds & curry leaves, add chopped veggies (peas, carrots), add roasted wheat, cook with 1 cup water till done (8-10 min). Season with salt & lemon."},
		{Name: "Idli (3 small, ragi + rice blend)", Quantity: "3 pieces (130g)", Calories: 170, Protein: 6, Carbs: 36, Fats: 1, Fiber: 2, Price: 28, DietType: Veg,
			Recipe: "Mix idli batter (1:1 rice & urad dal), add salt & let ferment overnight. Pour into idli molds, steam for 8-10 min in boiling water. Serve with sambar & coconut chutney."},
		{Name: "Oats Poha with Vegetables", Quantity: "1 cup (180g)", Calories: 200, Protein: 8, Carbs: 36, Fats: 4, Fiber: 6, Price: 30, DietType: Veg,
			Recipe: "Heat 1 tbsp oil, add mustard seeds & curry leaves, saut√© chopped onion & veggies (peas, carrots, beans), add 1 cup oats, mix well, cook 5 min. Add salt & lemon juice. Garnish with peanuts."},
		{Name: "Multigrain Paratha with Curd", Quantity: "1 piece (120g) + 100g curd", Calories: 260, Protein: 10, Carbs: 34, Fats: 8, Fiber: 6, Price: 40, DietType: Veg,
			Recipe: "Knead multigrain flour with water & salt, roll thin, pan-fry with minimal ghee until golden brown. Serve with plain yogurt & pickle."},
		{Name: "Besan & Oats Chilla (2)", Quantity: "2 pieces (160g)", Calories: 220, Protein: 14, Carbs: 28, Fats: 6, Fiber: 6, Price: 28, DietType: Veg,
			Recipe: "Mix besan + oats flour (equal), add chopped onion, ginger-green chili, salt, water to make thin batter. Heat non-stick pan, pour batter, cook 2-3 min per side. Serve with chutney."},
		{Name: "Rava Dosa - minimal oil", Quantity: "1 piece (140g)", Calories: 180, Protein: 6, Carbs: 34, Fats: 3, Fiber: 2, Price: 30, DietType: Veg,
			Recipe: "Mix rava + all-purpose flour (1:1), add salt, water to make thin batter, let sit 5 min. Heat dosa pan, pour batter, spread thin, cook with minimal oil. Fold & serve with sambar & chutney."},
		{Name: "Greek Yogurt Parfait with Berries", Quantity: "1 cup (200g)", Calories: 220, Protein: 14, Carbs: 25, Fats: 6, Fiber: 4, Price: 60, DietType: Veg,
			Recipe: "Layer Greek yogurt (150g) with granola (30g), fresh berries (40g), and honey (1 tsp). Mix well before eating or keep layered for texture. Serve chilled."},
		{Name: "Moong Dal Cheela with Paneer", Quantity: "2 pieces (200g)", Calories: 260, Protein: 18, Carbs: 30, Fats: 8, Fiber: 5, Price: 45, DietType: Veg,
			Recipe: "Soak moong dal 4 hrs, blend with onion & ginger, add salt & paneer cubes. Heat pan with oil, pour batter, cook 2-3 min per side until golden. Serve with mint chutney."},
		{Name: "Quinoa Upma with Veggies", Quantity: "1 cup (200g)", Calories: 240, Protein: 9, Carbs: 38, Fats: 5, Fiber: 6, Price: 60, DietType: Veg,
			Recipe: "Cook quinoa (1/2 cup), heat oil, temper with mustard seeds, add chopped veggies & cooked quinoa, stir-fry 3-4 min. Season with salt, turmeric & lemon juice."},
		{Name: "Fruit & Nut Bowl", Quantity: "1 bowl (200g)", Calories: 200, Protein: 6, Carbs: 30, Fats: 7, Fiber: 5, Price: 60, DietType: Veg,
			Recipe: "Chop seasonal fruits (banana, apple, berries), add almonds (10), walnuts (5), drizzle honey (1 tsp). Mix gently & serve immediately. Add Greek yogurt for protein."},
		{Name: "Egg White Omelette with Spinach", Quantity: "150g (3 egg whites)", Calories: 120, Protein: 20, Carbs: 4, Fats: 3, Fiber: 2, Price: 35, DietType: NonVeg,
			Recipe: "Beat 3 egg whites, add chopped spinach & tomato, salt & pepper. Heat pan with 1 tsp oil, pour mixture, fold when edges set. Cook 2-3 min total. Serve hot."},
		{Name: "Masala Omelette with Ragi Toast", Quantity: "200g", Calories: 260, Protein: 20, Carbs: 28, Fats: 8, Fiber: 4, Price: 45, DietType: NonVeg,
			Recipe: "Beat 1 egg + 2 egg whites, add chopped onion, capsicum, green chili, salt. Cook in oil till set. Toast ragi bread lightly. Serve together with ketchup on side."},
		{Name: "Smoked Salmon on Multigrain Toast", Quantity: "80g salmon + 1 slice", Calories: 220, Protein: 18, Carbs: 18, Fats: 10, Fiber: 2, Price: 180, DietType: NonVeg,
			Recipe: "Toast whole wheat bread slice, spread thin layer of cream cheese, place smoked salmon (80g), add fresh dill & lemon. Serve immediately with green tea."},
		{Name: "Egg Bhurji with Vegetables", Quantity: "1 plate (180g)", Calories: 240, Protein: 16, Carbs: 10, Fats: 14, Fiber: 3, Price: 45, DietType: NonVeg,
			Recipe: "Heat 1 tbsp oil, add finely chopped onion & green chili, scramble 2 eggs into it, add diced tomato & capsicum, salt. Cook 3-4 min till eggs are set & veggies are soft."},
		{Name: "Chicken & Vegetable Upma", Quantity: "1 cup (200g)", Calories: 300, Protein: 20, Carbs: 30, Fats: 8, Fiber: 3, Price: 70, DietType: NonVeg,
			Recipe: "Boil 80g minced chicken with turmeric & salt (5 min). Heat oil, temper with mustard seeds, add chopped veggies, add cooked chicken & 1 cup semolina, stir-fry 5-6 min. Season with salt & lemon."},
		{Name: "Dhokla (Steamed Chickpea Cake)", Quantity: "4 pieces (150g)", Calories: 200, Protein: 10, Carbs: 32, Fats: 4, Fiber: 4, Price: 35, DietType: Veg,
			Recipe: "Soak 1 cup chickpea flour with curds (4 hrs), add baking soda, salt, sugar, pour in greased pan, steam for 20 min. Temper with oil, mustard seeds & curry leaves. Serve with green chutney."},
		{Name: "Vegetable Poha", Quantity: "1 cup (180g)", Calories: 180, Protein: 4, Carbs: 36, Fats: 3, Fiber: 5, Price: 25, DietType: Veg,
			Recipe: "Rinse 1 cup poha, heat 1 tbsp oil, add mustard seeds, curry leaves, chopped onion, peas, carrots, add poha, mix well, cook 3-4 min. Season with salt, turmeric & lemon juice."},
	},
	Lunch: {
		{Name: "Brown Rice with Toor Dal & Mixed Veg", Quantity: "1 plate (300g)", Calories: 420, Protein: 15, Carbs: 68, Fats: 7, Fiber: 8, Price: 70, DietType: Veg,
			Recipe: "Cook 1 cup brown rice. Cook 1/2 cup toor dal till soft. Saut√© chopped mixed veggies (100g) in oil, add dal, mix with rice, season with salt, turmeric & cumin. Serve hot."},
		{Name: "Quinoa & Mixed Bean Salad", Quantity: "1 plate (300g)", Calories: 420, Protein: 18, Carbs: 52, Fats: 9, Fiber: 10, Price: 110, DietType: Veg,
			Recipe: "Cook quinoa (3/4 cup), boil mixed beans (50g) till soft, chop cucumber, tomato, onion, combine all, dress with olive oil, lemon & salt. Add cumin powder & serve at room temp."},
		{Name: "Sprouted Moong Salad + Multigrain Roti", Quantity: "1 plate + 1 roti", Calories: 360, Protein: 18, Carbs: 40, Fats: 6, Fiber: 12, Price: 65, DietType: Veg,
			Recipe: "Boil sprouted moong (100g), mix with finely chopped cucumber, tomato, onion, add lemon juice, salt, cumin. Prepare multigrain roti separately. Serve together with mint chutn ey."},
		{Name: "Chana Masala with Brown Rice", Quantity: "1 plate (280g)", Calories: 420, Protein: 16, Carbs: 62, Fats: 8, Fiber: 10, Price: 70, DietType: Veg,
			Recipe: "Cook canned chickpeas (1 cup), heat oil, add onion, tomato, ginger-garlic paste, add spices (cumin, coriander, turmeric, garam masala), add chickpeas, simmer 15 min. Serve with brown rice."},
		{Name: "Palak Paneer with 2 Multigrain Rotis", Quantity: "1 plate", Calories: 440, Protein: 26, Carbs: 44, Fats: 16, Fiber: 6, Price: 120, DietType: Veg,
			Recipe: "Blanch 200g spinach, blend smooth, heat 2 tbsp oil, add onion, tomato, add spinach puree, add paneer cubes (80g), simmer 10 min. Make multigrain rotis on the side. Serve together."},
		{Name: "Vegetable Biryani (Low Oil)", Quantity: "1 plate (300g)", Calories: 380, Protein: 10, Carbs: 58, Fats: 8, Fiber: 6, Price: 85, DietType: Veg,
			Recipe: "Soak 1 cup basmati rice, slice vegetables thinly. Layer rice & veggies alternately in pot with minimal oil, add water (2:1), cover, cook on high heat 2 min then low heat 20 min. Fluff with fork."},
		{Name: "Millet Pulao with Yogurt", Quantity: "1 plate (300g)", Calories: 400, Protein: 12, Carbs: 58, Fats: 8, Fiber: 8, Price: 85, DietType: Veg,
			Recipe: "Cook 1 cup millet, heat ghee, temper with whole spices (bay leaf, cinnamon), add chopped veggies, mix with cooked millet, season with salt. Serve with plain yogurt on side."},
		{Name: "Lemon Brown Rice with Roasted Veg", Quantity: "1 plate (300g)", Calories: 380, Protein: 8, Carbs: 64, Fats: 6, Fiber: 6, Price: 60, DietType: Veg,
			Recipe: "Cook brown rice (1 cup), roast veggies (broccoli, carrot, bell pepper) lightly in oil, toss with hot rice, add lemon juice, salt, turmeric. Garnish with cilantro."},
		{Name: "Vegetable Fried Rice with Egg", Quantity: "1 plate (300g)", Calories: 380, Protein: 14, Carbs: 56, Fats: 10, Fiber: 4, Price: 60, DietType: NonVeg,
			Recipe: "Heat oil in wok, scramble 1 egg, add cooked rice (1.5 cups), chopped veggies, soy sauce, salt. Stir-fry 5-6 min. Garnish with green onion & sesame oil."},
		{Name: "Grilled Chicken with Brown Rice", Quantity: "200g chicken + rice", Calories: 420, Protein: 40, Carbs: 40, Fats: 6, Fiber: 2, Price: 140, DietType: NonVeg,
			Recipe: "Marinate 200g chicken breast in yogurt, lemon, salt, spices for 30 min. Grill/pan-fry for 8-10 min. Serve with cooked brown rice (1 cup) & grilled vegetables."},
		{Name: "Tandoori Fish with Millet", Quantity: "150g fish + millet", Calories: 420, Protein: 38, Carbs: 48, Fats: 8, Fiber: 2, Price: 180, DietType: NonVeg,
			Recipe: "Marinate fish (150g) in yogurt, tandoori spices, cook in oven at 200¬∞C for 15 min. Cook millet separately (1 cup with 2 cups water, 25 min). Serve with lemon & salad."},
		{Name: "Chicken Tikka Masala with Rice", Quantity: "180g + 150g rice", Calories: 480, Protein: 36, Carbs: 56, Fats: 10, Fiber: 2, Price: 160, DietType: NonVeg,
			Recipe: "Marinate chicken (180g) in yogurt & spices, grill/pan-fry. Make tomato-cream sauce (tomato + onion + spices), add chicken, simmer 15 min. Serve with basmati rice."},
		{Name: "Vegetable Curry with 2 Rotis", Quantity: "1 plate", Calories: 340, Protein: 10, Carbs: 50, Fats: 8, Fiber: 8, Price: 55, DietType: Veg,
			Recipe: "Heat oil, add onion, ginger-garlic paste, cook till golden, add mixed veggies (pumpkin, peas, carrots), add spices & tomato, simmer 20 min. Make 2 wheat rotis on side. Serve hot."},
		{Name: "Rajma (Kidney Beans) with Brown Rice", Quantity: "1 plate (300g)", Calories: 420, Protein: 16, Carbs: 62, Fats: 6, Fiber: 10, Price: 70, DietType: Veg,
			Recipe: "Soak rajma overnight, pressure cook with salt & turmeric (4 whistles). Make tempering with oil, onion, ginger-garlic, add cooked rajma, simmer with tomato & spices. Serve with brown rice."},
		{Name: "Chickpea & Vegetable Stew", Quantity: "1 plate (280g)", Calories: 360, Protein: 14, Carbs: 54, Fats: 8, Fiber: 10, Price: 65, DietType: Veg,
			Recipe: "Heat oil, saut√© onion & garlic, add chickpeas & chopped veggies (spinach, carrots, beans), add vegetable broth, simmer 25-30 min. Season with salt, pepper & herbs. Serve warm."},
	},
	Dinner: {
		{Name: "Khichdi with Vegetable Salad", Quantity: "1 plate (300g)", Calories: 340, Protein: 14, Carbs: 54, Fats: 6, Fiber: 6, Price: 55, DietType: Veg,
			Recipe: "Cook 1/2 cup moong dal + 1/2 cup rice in 2 cups water with turmeric & salt till mushy (30 min). Chop cucumber, tomato, onion for salad, dress with lemon & salt. Serve khichdi with salad & ghee."},
		{Name: "Mixed Dal Soup with Toast", Quantity: "1 bowl + 1 slice", Calories: 300, Protein: 18, Carbs: 38, Fats: 6, Fiber: 8, Price: 60, DietType: Veg,
			Recipe: "Boil mixed dal (moong, masoor, toor - 1/2 cup total) with veggies (100g), blend half-smooth, add salt & turmeric. Toast whole wheat bread slice. Serve soup hot with toast on side."},
		{Name: "Grilled Vegetable Platter + Roti", Quantity: "1 plate", Calories: 320, Protein: 8, Carbs: 48, Fats: 8, Fiber: 10, Price: 75, DietType: Veg,
			Recipe: "Slice vegetables (zucchini, capsicum, broccoli, mushroom), brush lightly with oil, grill 8-10 min. Make 1 multigrain roti. Serve grilled veggies with roti, salt & lemon on side."},
		{Name: "Moong Dal Cheela (3) with Chutney", Quantity: "3 pieces (240g)", Calories: 330, Protein: 20, Carbs: 42, Fats: 8, Fiber: 8, Price: 60, DietType: Veg,
			Recipe: "Soak moong dal 4 hrs, blend with onion & ginger, add salt, water for thin batter. Cook 3 cheelas on oil-lightly pan, 2-3 min per side. Serve with mint-coriander chutney."},
		{Name: "Stir-Fried Tofu with Vegetables + Roti", Quantity: "1 plate", Calories: 380, Protein: 22, Carbs: 36, Fats: 14, Fiber: 6, Price: 110, DietType: Veg,
			Recipe: "Press tofu (150g) to remove water, cube it, stir-fry in oil with garlic, add sliced veggies (bell pepper, broccoli), add soy sauce & salt. Cook 5-6 min. Make 1 wheat roti. Serve together."},
		{Name: "Bajra Khichdi with Bottle Gourd", Quantity: "1 plate (300g)", Calories: 360, Protein: 12, Carbs: 52, Fats: 6, Fiber: 8, Price: 70, DietType: Veg,
			Recipe: "Cook bajra (1/2 cup) + moong (1/2 cup) with water, add cubed bottle gourd (50g) midway, cook till tender (30 min). Season with salt, turmeric & ghee. Serve hot."},
		{Name: "Grilled Chicken with Steamed Vegetables", Quantity: "200g chicken + veg", Calories: 320, Protein: 42, Carbs: 12, Fats: 8, Fiber: 4, Price: 150, DietType: NonVeg,
			Recipe: "Marinate chicken (200g) in lemon, salt & herbs, grill 10-12 min. Steam vegetables (100g) separately till tender. Serve hot chicken with steamed veggies & lemon on side."},
		{Name: "Tandoori Fish with Salad", Quantity: "180g fish + salad", Calories: 340, Protein: 38, Carbs: 8, Fats: 12, Fiber: 3, Price: 200, DietType: NonVeg,
			Recipe: "Coat fish (180g) with tandoori spices & yogurt, grill 15 min. Make fresh salad with cucumber, tomato, onion, dress with lemon & salt. Serve fish hot with salad on side."},
		{Name: "Egg Curry with Multigrain Roti", Quantity: "2 eggs + 1 roti", Calories: 320, Protein: 20, Carbs: 28, Fats: 12, Fiber: 3, Price: 80, DietType: NonVeg,
			Recipe: "Hard boil 2 eggs, shell them. Make curry: saut√© onion, add tomato & spices, add eggs, simmer 10 min. Make 1 multigrain roti. Serve curry with roti."},
		{Name: "Prawn & Vegetable Stir Fry", Quantity: "150g + 100g veg", Calories: 380, Protein: 32, Carbs: 30, Fats: 10, Fiber: 4, Price: 240, DietType: NonVeg,
			Recipe: "Heat oil, add garlic & ginger, add veggies (broccoli, bell pepper), cook 3 min, add prawns (150g), cook 4-5 min till pink. Add salt, soy sauce. Serve hot over steamed rice (100g)."},
		{Name: "Vegetable Soup with Whole Wheat Bread", Quantity: "1 bowl + 2 slices", Calories: 260, Protein: 8, Carbs: 38, Fats: 6, Fiber: 8, Price: 55, DietType: Veg,
			Recipe: "Saut√© onion & garlic, add mixed chopped veggies (150g), vegetable broth (2 cups), simmer 20 min, blend partially. Season with salt & pepper. Toast 2 bread slices, serve with soup."},
		{Name: "Methi Thepla with Low-Fat Curd", Quantity: "2 pieces + 100g curd", Calories: 300, Protein: 10, Carbs: 40, Fats: 8, Fiber: 6, Price: 50, DietType: Veg,
			Recipe: "Knead multigrain flour + fenugreek leaves (50g) with salt, water, roll thin, pan-fry with minimal oil. Serve 2 theplas with plain yogurt (100g) & pickle on side."},
		{Name: "Lean Mutton Stew with Millet Roti", Quantity: "150g mutton + roti", Calories: 500, Protein: 36, Carbs: 40, Fats: 18, Fiber: 2, Price: 220, DietType: NonVeg,
			Recipe: "Cook mutton (150g) with onion, ginger-garlic, tomato & spices in pressure cooker (3 whistles). Make 1 millet roti separately. Serve hot stew with roti & vegetables."},
		{Name: "Chicken Shorba with Brown Rice", Quantity: "1 bowl + 100g rice", Calories: 360, Protein: 28, Carbs: 40, Fats: 8, Fiber: 1, Price: 130, DietType: NonVeg,
			Recipe: "Boil chicken (150g) with whole spices, onion, ginger, turmeric till tender, strain, add salt & pepper. Cook brown rice separately (1/2 cup). Serve hot shorba with rice bowl on side."},
	},
	Snack: {
		{Name: "Roasted Chana & Peanut Mix", Quantity: "50g", Calories: 260, Protein: 13, Carbs: 20, Fats: 14, Fiber: 7, Price: 25, DietType: Veg,
			Recipe: "Dry roast 25g chana, 15g peanuts, 10g cashews on low heat for 5-7 min, stirring occasionally. Cool completely, add salt & chaat masala. Store in airtight container."},
		{Name: "Baked Samosa with Salad", Quantity: "1 piece (80g)", Calories: 160, Protein: 4, Carbs: 24, Fats: 6, Fiber: 3, Price: 20, DietType: Veg,
			Recipe: "Prepare samosa filling: boil potato (60g), add peas, cumin, salt, chili powder. Wrap in pastry, brush with oil, bake at 180¬∞C for 20 min. Serve with fresh salad (cucumber, tomato)."},
		{Name: "Makhana (Fox Nuts) - Roasted", Quantity: "50g", Calories: 70, Protein: 3, Carbs: 14, Fats: 1, Fiber: 2, Price: 40, DietType: Veg,
			Recipe: "Heat 1 tsp oil in pan, add makhana, roast on medium-low heat for 8-10 min, stirring constantly. Add salt & chaat masala while hot. Cool & store in airtight container."},
		{Name: "Mixed Nuts - Almonds & Walnuts", Quantity: "30g", Calories: 190, Protein: 6, Carbs: 4, Fats: 16, Fiber: 3, Price: 45, DietType: Veg,
			Recipe: "Soak almonds (20) in water for 4 hrs, peel off skin, roast lightly. Mix with walnuts (10 halves). Eat as snack. Can store in refrigerator for 1 week."},
		{Name: "Apple with Peanut Butter", Quantity: "1 apple + 15g PB", Calories: 220, Protein: 4, Carbs: 32, Fats: 9, Fiber: 5, Price: 50, DietType: Veg,
			Recipe: "Slice 1 medium apple, spread natural peanut butter (1 tbsp) on a plate, dip apple slices & eat. Or spread PB on apple slices & stack them together."},
		{Name: "Cucumber & Carrot Sticks with Hummus", Quantity: "150g veg + 30g hummus", Calories: 140, Protein: 4, Carbs: 14, Fats: 8, Fiber: 4, Price: 45, DietType: Veg,
			Recipe: "Cut cucumber & carrots into sticks, refrigerate. Make hummus: blend canned chickpeas with tahini, lemon, garlic, salt. Serve sticks with hummus dip."},
		{Name: "Sprouted Moong Chaat", Quantity: "1 cup (150g)", Calories: 160, Protein: 12, Carbs: 22, Fats: 2, Fiber: 8, Price: 40, DietType: Veg,
			Recipe: "Boil sprouted moong (100g), cool, mix with finely chopped cucumber, tomato, onion, add lemon juice, salt, cumin powder, chaat masala. Serve at room temperature."},
		{Name: "Dates & Mixed Nuts", Quantity: "approx 40g", Calories: 150, Protein: 3, Carbs: 30, Fats: 5, Fiber: 4, Price: 30, DietType: Veg,
			Recipe: "Pit 3 dates (remove seed), stuff with almond (1) or walnut piece, serve as-is. Can also chop & mix together. Great for energy boost."},
		{Name: "Boiled Egg & Sprout Salad", Quantity: "1 egg + 50g sprouts", Calories: 190, Protein: 16, Carbs: 6, Fats: 10, Fiber: 2, Price: 30, DietType: NonVeg,
			Recipe: "Boil 1 egg (8-10 min), cool, slice. Mix sprouted mung with cucumber, tomato, dress with lemon & salt. Top with egg slices & serve."},
		{Name: "Grilled Chicken Strips", Quantity: "100g", Calories: 150, Protein: 28, Carbs: 2, Fats: 4, Fiber: 0, Price: 90, DietType: NonVeg,
			Recipe: "Cut chicken breast (100g) into strips, marinate in lemon, salt & pepper for 15 min, grill on skewers for 8-10 min, turning occasionally. Serve with lemon on side."},
		{Name: "Home-made Trail Mix", Quantity: "30g", Calories: 160, Protein: 4, Carbs: 12, Fats: 10, Fiber: 3, Price: 35, DietType: Veg,
			Recipe: "Mix roasted peanuts (10g), almonds (8), raisins (8), sunflower seeds (4g), store in airtight container. Eat by handful as needed. Make in batches of 200g."},
		{Name: "Fresh Whole Fruit", Quantity: "1 medium", Calories: 80, Protein: 2, Carbs: 18, Fats: 0, Fiber: 5, Price: 25, DietType: Veg,
			Recipe: "Choose seasonal fruit: apple (150g), orange (200g), pear (180g), or guava (150g). Wash well, eat fresh or cut into pieces. Avoid canned/processed options."},
		{Name: "Roasted Chickpea Snack", Quantity: "50g", Calories: 180, Protein: 10, Carbs: 24, Fats: 5, Fiber: 6, Price: 20, DietType: Veg,
			Recipe: "Rinse canned chickpeas, dry well, toss with oil & spices (cumin, chaat masala), roast at 200¬∞C for 25-30 min, shaking halfway. Cool & store in airtight container."},
		{Name: "Baked Sweet Potato Wedges", Quantity: "150g", Calories: 140, Protein: 2, Carbs: 32, Fats: 0, Fiber: 4, Price: 35, DietType: Veg,
			Recipe: "Cut sweet potato (150g) into wedges, brush with oil, season with salt & paprika, bake at 200¬∞C for 25-30 min till crispy. Serve hot or at room temperature."},
	},
	Drink: {
		{Name: "Green Tea - Lemon & Honey", Quantity: "1 cup (200ml)", Calories: 10, Protein: 0, Carbs: 2, Fats: 0, Fiber: 0, Price: 15, DietType: Veg,
			Recipe: "Boil water, add 1 green tea bag, steep for 3-4 min, add lemon slice & 1 tsp raw honey (when cooled slightly). Drink fresh without sugar for best benefits."},
		{Name: "Herbal Tulsi Tea", Quantity: "1 cup (200ml)", Calories: 5, Protein: 0, Carbs: 1, Fats: 0, Fiber: 0, Price: 12, DietType: Veg,
			Recipe: "Boil water with 5-6 fresh tulsi leaves, add 1 small piece ginger, lemon slice, steep 5 min. Strain & drink. Avoid sugar, you can add jaggery if needed."},
		{Name: "Skim Milk", Quantity: "200ml", Calories: 90, Protein: 9, Carbs: 12, Fats: 0, Fiber: 0, Price: 20, DietType: Veg,
			Recipe: "Heat milk till warm, add a pinch of turmeric or cardamom for flavor. Drink warm without sugar for best calcium absorption. Serve in the morning or evening."},
		{Name: "Buttermilk (Chaas) - Unsweetened", Quantity: "1 glass (200ml)", Calories: 50, Protein: 3, Carbs: 4, Fats: 1, Fiber: 0, Price: 12, DietType: Veg,
			Recipe: "Blend yogurt (150g) with water (50ml), add salt, cumin powder & finely chopped ginger. Churn well. Serve chilled immediately after preparation."},
		{Name: "Banana Spinach Protein Smoothie", Quantity: "1 glass (300ml)", Calories: 220, Protein: 18, Carbs: 30, Fats: 4, Fiber: 6, Price: 80, DietType: Veg,
			Recipe: "Blend 1 banana, 50g fresh spinach, 1 scoop protein powder, 150ml milk, 1 tbsp nut butter, ice cubes. Blend until smooth. Drink immediately for maximum nutrition."},
		{Name: "Mango Lassi - Low Sugar", Quantity: "1 glass (200ml)", Calories: 150, Protein: 6, Carbs: 24, Fats: 3, Fiber: 1, Price: 50, DietType: Veg,
			Recipe: "Blend 60g mango (ripe), 150g plain yogurt, 50ml milk, 1/2 tsp cardamom powder, minimal honey (1/2 tsp). Serve chilled. Avoid adding extra sugar."},
		{Name: "Coconut Water - Fresh", Quantity: "1 glass (300ml)", Calories: 60, Protein: 2, Carbs: 12, Fats: 0, Fiber: 0, Price: 35, DietType: Veg,
			Recipe: "Use fresh young coconut, pierce the top with a sharp object, pour water into glass. Drink fresh immediately. Can be stored in refrigerator for 1-2 days max."},
		{Name: "Lemon Water - Salted (Nimbu Pani)", Quantity: "1 glass (200ml)", Calories: 8, Protein: 0, Carbs: 1, Fats: 0, Fiber: 0, Price: 8, DietType: Veg,
			Recipe: "Squeeze 1/2 lemon into water, add salt & cumin powder, optionally add ginger slice. Mix well. Drink at room temperature or chilled. Best consumed fresh."},
		{Name: "Carrot-Apple Juice - Unsweetened", Quantity: "1 glass (200ml)", Calories: 90, Protein: 1, Carbs: 22, Fats: 0, Fiber: 3, Price: 45, DietType: Veg,
			Recipe: "Juice 1 large carrot + 1 apple using a juicer, add water if too concentrated (1:1 ratio), drink immediately. No added sugar. Can add ginger for extra flavor & warmth."},
		{Name: "Golden Milk (Turmeric Milk)", Quantity: "1 cup (200ml)", Calories: 120, Protein: 6, Carbs: 10, Fats: 4, Fiber: 0, Price: 30, DietType: Veg,
			Recipe: "Heat milk (200ml), add 1/4 tsp turmeric powder, pinch black pepper, cinnamon stick (optional), honey (1/2 tsp). Simmer 2 min, strain. Drink warm before bed."},
		{Name: "Jeera Water - Warm", Quantity: "1 glass (200ml)", Calories: 5, Protein: 0, Carbs: 1, Fats: 0, Fiber: 0, Price: 5, DietType: Veg,
			Recipe: "Soak 1 tsp jeera in water overnight (or boil for 5 min), strain into glass. Drink warm on empty stomach in morning. Aids digestion & metabolism. Best for digestive health."},
	},
}
