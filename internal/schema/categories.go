package schema

// categories is the full scorecard definition. Each criterion carries a
// scoring guide so evaluations stay consistent across areas. Default weights
// sum to 100.
var categories = []Category{
	{
		ID:            "financial",
		Name:          "Financial",
		Description:   "Tax burden, land costs, and overall affordability",
		DefaultWeight: 18,
		Criteria: []Criterion{
			{
				ID:          "propertyTax",
				Name:        "Property Tax Rate",
				Description: "Annual property tax as % of assessed value",
				Guide:       "10 = under 0.5% | 8 = 0.5–0.9% | 6 = 1.0–1.4% | 4 = 1.5–1.9% | 2 = 2.0%+",
			},
			{
				ID:          "incomeTax",
				Name:        "State Income Tax",
				Description: "State income tax rate (top marginal or flat)",
				Guide:       "10 = none | 8 = under 3% | 6 = 3–5% | 4 = 5–7% | 2 = over 7%",
			},
			{
				ID:          "salesTax",
				Name:        "Sales Tax",
				Description: "Combined state + local sales tax",
				Guide:       "10 = none | 8 = under 5% | 6 = 5–7% | 4 = 7–9% | 2 = over 9%",
			},
			{
				ID:          "landCost",
				Name:        "Land Cost per Acre",
				Description: "Average $/acre for 5–20 acre rural parcels",
				Guide:       "10 = under $5K | 8 = $5–15K | 6 = $15–25K | 4 = $25–40K | 2 = over $40K",
			},
			{
				ID:          "costOfLiving",
				Name:        "Overall Cost of Living",
				Description: "Groceries, utilities, services, everyday expenses",
				Guide:       "10 = very low | 8 = low | 6 = moderate | 4 = above avg | 2 = high",
			},
			{
				ID:          "insurance",
				Name:        "Insurance Costs",
				Description: "Homeowner, flood, fire, and wind insurance burden",
				Guide:       "10 = very low | 8 = low | 6 = moderate | 4 = above avg | 2 = high",
			},
			{
				ID:          "constructionCost",
				Name:        "Construction Cost ($/sqft)",
				Description: "Average new construction cost per square foot in the area",
				Guide:       "10 = under $100/sqft | 8 = $100–140 | 6 = $140–180 | 4 = $180–220 | 2 = over $220/sqft",
			},
			{
				ID:          "resaleLiquidity",
				Name:        "Resale & Liquidity",
				Description: "How quickly properties sell and retain value in this market",
				Guide:       "10 = hot market (<30 days avg) | 8 = healthy (30–60) | 6 = moderate (60–90) | 4 = slow (90–180) | 2 = stagnant (180+)",
			},
			{
				ID:          "agExemption",
				Name:        "Agricultural Tax Exemption",
				Description: "Availability of ag/timber exemptions for property tax savings",
				Guide:       "10=easy ag exempt, 80%+ tax reduction | 7=available with effort | 5=limited programs | 3=difficult/restrictive | 1=not available",
			},
		},
	},
	{
		ID:            "buildingFreedom",
		Name:          "Building Freedom",
		Description:   "Permitting ease, owner-builder rights, regulatory burden",
		DefaultWeight: 13,
		Criteria: []Criterion{
			{
				ID:          "permitProcess",
				Name:        "Permit Process Ease",
				Description: "How complex is the building permit process?",
				Guide:       "10 = no permits needed | 8 = simple/fast | 6 = moderate | 4 = complex | 2 = very complex",
			},
			{
				ID:          "ownerBuilder",
				Name:        "Owner-Builder Allowance",
				Description: "Can you act as your own general contractor?",
				Guide:       "10 = fully allowed, self-certify | 8 = allowed with exam | 6 = allowed with limits | 4 = restricted | 2 = must hire licensed GC",
			},
			{
				ID:          "codeStrictness",
				Name:        "Code & Inspection Leniency",
				Description: "How strict are building codes and inspection requirements?",
				Guide:       "10 = minimal inspections | 8 = basic inspections | 6 = standard IRC | 4 = strict local codes | 2 = very strict + extra reqs",
			},
			{
				ID:          "hoaFreedom",
				Name:        "HOA / Deed Restriction Freedom",
				Description: "Availability of unrestricted rural parcels",
				Guide:       "10 = no HOAs anywhere | 8 = easy to find no-HOA | 6 = some HOA-free | 4 = most have HOA | 2 = nearly all restricted",
			},
			{
				ID:          "zoningFlexibility",
				Name:        "Zoning Flexibility",
				Description: "Agricultural/residential zoning flexibility for custom builds",
				Guide:       "10 = no zoning | 8 = very flexible ag/rural | 6 = standard residential | 4 = restrictive | 2 = very restrictive",
			},
			{
				ID:          "contractorAvailability",
				Name:        "Contractor Availability",
				Description: "Availability of quality builders, subs, and tradespeople",
				Guide:       "10 = many experienced builders | 8 = good selection | 6 = adequate | 4 = limited/long waits | 2 = very scarce",
			},
		},
	},
	{
		ID:            "healthcare",
		Name:          "Healthcare",
		Description:   "MG treatment access, emergency care, medical infrastructure",
		DefaultWeight: 14,
		Criteria: []Criterion{
			{
				ID:          "mgDistance",
				Name:        "MG Specialist Distance",
				Description: "Drive time to nearest myasthenia gravis treatment center",
				Guide:       "10 = under 30 min | 8 = 30–60 min | 6 = 60–90 min | 4 = 90–120 min | 2 = over 2 hrs",
			},
			{
				ID:          "mgQuality",
				Name:        "MG Center Quality",
				Description: "Quality/reputation of nearest MG treatment facility",
				Guide:       "10 = top-5 national (Mass General, Mayo) | 8 = major academic | 6 = regional center | 4 = general neuro | 2 = limited",
			},
			{
				ID:          "emergencyCare",
				Name:        "Emergency Care Access",
				Description: "Distance to nearest ER / Level I-II trauma center",
				Guide:       "10 = under 10 min | 8 = 10–20 min | 6 = 20–30 min | 4 = 30–45 min | 2 = over 45 min",
			},
			{
				ID:          "generalMedical",
				Name:        "General Medical Access",
				Description: "Primary care, dentist, urgent care availability",
				Guide:       "10 = excellent access | 8 = good | 6 = adequate | 4 = limited | 2 = very limited",
			},
			{
				ID:          "pharmacySpecialist",
				Name:        "Pharmacy & Specialist Access",
				Description: "Pharmacy, lab, and medical specialist availability",
				Guide:       "10 = full services nearby | 8 = good access | 6 = adequate | 4 = limited | 2 = must travel far",
			},
		},
	},
	{
		ID:            "transportation",
		Name:          "Transportation",
		Description:   "Airport access, highway connectivity, metro proximity",
		DefaultWeight: 10,
		Criteria: []Criterion{
			{
				ID:          "airportDistance",
				Name:        "Major Airport Distance",
				Description: "Drive time to nearest major international airport",
				Guide:       "10 = under 30 min | 8 = 30–60 min | 6 = 60–90 min | 4 = 90–120 min | 2 = over 2 hrs",
			},
			{
				ID:          "airportQuality",
				Name:        "Airport Quality & Routes",
				Description: "Number of direct flights, international routes, airline options",
				Guide:       "10 = top-10 hub (ORD, DFW, DEN) | 8 = major intl | 6 = regional intl | 4 = small regional | 2 = very limited",
			},
			{
				ID:          "roadAccess",
				Name:        "Highway & Road Access",
				Description: "Interstate/highway proximity, road quality",
				Guide:       "10 = on interstate | 8 = 10 min to interstate | 6 = 20 min | 4 = 30+ min | 2 = remote/poor roads",
			},
			{
				ID:          "cityProximity",
				Name:        "Metro / City Proximity",
				Description: "Drive time to nearest major city for services/culture",
				Guide:       "10 = under 20 min | 8 = 20–40 min | 6 = 40–60 min | 4 = 60–90 min | 2 = over 90 min",
			},
			{
				ID:          "seasonalAccess",
				Name:        "Seasonal Road Access",
				Description: "Year-round road access reliability (snow, mud, flooding)",
				Guide:       "10 = fully maintained year-round | 8 = reliable with minor closures | 6 = occasional issues | 4 = seasonal closures | 2 = frequently impassable",
			},
		},
	},
	{
		ID:            "climate",
		Name:          "Climate & Environment",
		Description:   "Temperature comfort, weather risks, sunshine, humidity",
		DefaultWeight: 10,
		Criteria: []Criterion{
			{
				ID:          "summerComfort",
				Name:        "Summer Comfort",
				Description: "How tolerable are the summers? (heat, humidity)",
				Guide:       "10 = 75–85°F dry | 8 = 80–90°F | 6 = 90–95°F or humid | 4 = 95–100°F | 2 = 100°F+ or extreme humidity",
			},
			{
				ID:          "winterComfort",
				Name:        "Winter Comfort",
				Description: "How tolerable are the winters? (cold, snow/ice)",
				Guide:       "10 = mild (40°F+) | 8 = moderate (30–40°F) | 6 = cold (20–30°F) | 4 = harsh (10–20°F) | 2 = severe (under 10°F)",
			},
			{
				ID:          "disasterRisk",
				Name:        "Natural Disaster Risk",
				Description: "Risk of tornado, hurricane, earthquake, wildfire, flood",
				Guide:       "10 = minimal risk | 8 = low risk | 6 = moderate (1 type) | 4 = elevated (2+ types) | 2 = high risk zone",
			},
			{
				ID:          "sunshine",
				Name:        "Sunshine & Pleasant Days",
				Description: "Annual sunny/clear days",
				Guide:       "10 = 280+ days | 8 = 230–280 | 6 = 180–230 | 4 = 130–180 | 2 = under 130",
			},
			{
				ID:          "humidity",
				Name:        "Humidity & Air Comfort",
				Description: "Average humidity and air quality comfort",
				Guide:       "10 = dry/arid | 8 = low humidity | 6 = moderate | 4 = humid | 2 = very humid / poor air",
			},
			{
				ID:          "climateResilience",
				Name:        "Climate Change Resilience",
				Description: "Long-term water security, wildfire trend, heat trajectory over 30 years",
				Guide:       "10=excellent long-term outlook | 7=good resilience, minor concerns | 5=moderate risks emerging | 3=significant climate threats | 1=severe water/fire/heat crisis",
			},
		},
	},
	{
		ID:            "schools",
		Name:          "Schools & Education",
		Description:   "District quality, school choice, programs for future kids",
		DefaultWeight: 10,
		Criteria: []Criterion{
			{
				ID:          "districtRating",
				Name:        "Public School District Rating",
				Description: "Overall district rating (GreatSchools, Niche, state rankings)",
				Guide:       "10 = top 5% statewide | 8 = top 15% | 6 = top 30% | 4 = average | 2 = below average",
			},
			{
				ID:          "schoolChoice",
				Name:        "School Choice Options",
				Description: "Private, charter, magnet, homeschool co-op availability",
				Guide:       "10 = many options nearby | 8 = several | 6 = some | 4 = few | 2 = public only",
			},
			{
				ID:          "extracurriculars",
				Name:        "Extracurricular & Sports Programs",
				Description: "Youth sports, STEM, arts, and activity programs",
				Guide:       "10 = extensive programs | 8 = good variety | 6 = adequate | 4 = limited | 2 = minimal",
			},
			{
				ID:          "higherEd",
				Name:        "Higher Education Proximity",
				Description: "Proximity to colleges/universities",
				Guide:       "10 = major university nearby | 8 = state college nearby | 6 = community college | 4 = distant | 2 = very limited",
			},
		},
	},
	{
		ID:            "infrastructure",
		Name:          "Infrastructure",
		Description:   "Internet, cell coverage, water, electricity reliability",
		DefaultWeight: 5,
		Criteria: []Criterion{
			{
				ID:          "internet",
				Name:        "Internet Speed & Availability",
				Description: "Best available internet at rural parcels",
				Guide:       "10 = fiber 1Gbps+ | 8 = cable 100Mbps+ | 6 = DSL/fixed wireless 25Mbps+ | 4 = Starlink only | 2 = very limited",
			},
			{
				ID:          "cellCoverage",
				Name:        "Cell Phone Coverage",
				Description: "Major carrier signal strength in target areas",
				Guide:       "10 = all carriers strong | 8 = 2+ carriers good | 6 = 1 carrier good | 4 = spotty | 2 = dead zones",
			},
			{
				ID:          "waterReliability",
				Name:        "Water Source Reliability",
				Description: "Well depth, water table, municipal availability",
				Guide:       "10 = municipal + well option | 8 = reliable well | 6 = well with moderate depth | 4 = deep well required | 2 = water scarcity concern",
			},
			{
				ID:          "electricReliability",
				Name:        "Electric Grid Reliability",
				Description: "Power outage frequency and grid quality",
				Guide:       "10 = very reliable / co-op | 8 = reliable | 6 = occasional outages | 4 = frequent outages | 2 = unreliable",
			},
			{
				ID:          "renewableEnergy",
				Name:        "Renewable Energy Potential",
				Description: "Solar irradiance, wind potential, net metering laws, incentives",
				Guide:       "10 = excellent solar/wind + strong incentives | 8 = good potential | 6 = moderate | 4 = limited | 2 = poor potential / no incentives",
			},
		},
	},
	{
		ID:            "community",
		Name:          "Community & Lifestyle",
		Description:   "Culture, recreation, community feel, social connections",
		DefaultWeight: 5,
		Criteria: []Criterion{
			{
				ID:          "culturalAmenities",
				Name:        "Cultural Amenities",
				Description: "Dining, shopping, arts, entertainment, nightlife",
				Guide:       "10 = major city access | 8 = good variety | 6 = some options | 4 = limited | 2 = very rural/none",
			},
			{
				ID:          "outdoorRec",
				Name:        "Outdoor Recreation",
				Description: "Hiking, fishing, hunting, lakes, parks, trails",
				Guide:       "10 = world-class outdoor access | 8 = excellent | 6 = good | 4 = adequate | 2 = limited",
			},
			{
				ID:          "communityFeel",
				Name:        "Community Character & Feel",
				Description: "Small-town charm, neighborliness, sense of belonging",
				Guide:       "10 = strong tight-knit community | 8 = welcoming | 6 = neutral | 4 = transient/sprawl | 2 = isolated/unwelcoming",
			},
			{
				ID:          "friendsFamily",
				Name:        "Proximity to Friends & Family",
				Description: "How easily can friends/family visit? (NJ friends, etc.)",
				Guide:       "10 = under 2 hr drive | 8 = 2–4 hr drive or short flight | 6 = 4–6 hr drive | 4 = long flight | 2 = very remote from family",
			},
			{
				ID:          "agingInPlace",
				Name:        "Aging-in-Place Friendliness",
				Description: "Senior services, healthcare access, walkability for future needs",
				Guide:       "10 = excellent senior infrastructure | 8 = good services nearby | 6 = adequate | 4 = limited | 2 = very rural/no services",
			},
			{
				ID:          "dailyLifeAccess",
				Name:        "Daily Life Accessibility",
				Description: "Walkability, errand convenience, delivery services, emergency response time for someone with chronic illness",
				Guide:       "10=walkable town, all services | 7=short drive, good services | 5=20-30min drives, some delivery | 3=remote, limited services | 1=very isolated",
			},
		},
	},
	{
		ID:            "safety",
		Name:          "Safety & Risk",
		Description:   "Crime, natural hazards, emergency services, stability",
		DefaultWeight: 5,
		Criteria: []Criterion{
			{
				ID:          "crimeRate",
				Name:        "Crime Rate",
				Description: "Violent and property crime rates for the area",
				Guide:       "10 = very low | 8 = low | 6 = below national avg | 4 = at national avg | 2 = above national avg",
			},
			{
				ID:          "naturalHazards",
				Name:        "Natural Hazard Risk",
				Description: "Flood zone, wildfire, tornado, hurricane, earthquake risk",
				Guide:       "10 = minimal all categories | 8 = low | 6 = moderate (1 risk) | 4 = elevated | 2 = high risk",
			},
			{
				ID:          "emergencyServices",
				Name:        "Emergency Services Response",
				Description: "Fire dept, ambulance, police response times",
				Guide:       "10 = under 5 min | 8 = 5–10 min | 6 = 10–15 min | 4 = 15–25 min | 2 = over 25 min",
			},
			{
				ID:          "regulatoryStability",
				Name:        "Political & Regulatory Stability",
				Description: "Consistency of regulations, tax policy, governance",
				Guide:       "10 = very stable/predictable | 8 = stable | 6 = mostly stable | 4 = some volatility | 2 = unpredictable",
			},
			{
				ID:          "environmentalRisk",
				Name:        "Environmental Red Flags",
				Description: "Contamination, superfund sites, mining, industrial pollution, radon",
				Guide:       "10 = no known issues | 8 = minimal | 6 = minor concerns | 4 = some contamination nearby | 2 = major environmental issues",
			},
			{
				ID:          "climateTrajectory",
				Name:        "Long-Term Climate Risk",
				Description: "Wildfire risk trend, drought trajectory, flood pattern changes, insurance availability",
				Guide:       "10=improving or stable | 7=minor trend concerns | 5=notable worsening | 3=rapidly deteriorating | 1=crisis-level trajectory",
			},
		},
	},
	{
		ID:            "landQuality",
		Name:          "Land & Property",
		Description:   "Terrain, soil, water rights, views, privacy, appreciation",
		DefaultWeight: 5,
		Criteria: []Criterion{
			{
				ID:          "terrainViews",
				Name:        "Terrain, Scenery & Views",
				Description: "Visual appeal — hills, trees, water, mountains, sunsets",
				Guide:       "10 = stunning views/mountains | 8 = beautiful rolling/wooded | 6 = pleasant | 4 = flat/plain | 2 = unattractive",
			},
			{
				ID:          "soilQuality",
				Name:        "Soil Quality",
				Description: "Soil for building foundations, gardening, septic",
				Guide:       "10 = deep rich loam | 8 = good loam/sand mix | 6 = acceptable | 4 = rocky/heavy clay | 2 = very poor/caliche",
			},
			{
				ID:          "waterAccess",
				Name:        "Water Access & Rights",
				Description: "Surface water, creeks, ponds, water rights clarity",
				Guide:       "10 = creek + pond + clear rights | 8 = good water features | 6 = well water reliable | 4 = deep well only | 2 = water scarcity",
			},
			{
				ID:          "privacy",
				Name:        "Privacy & Seclusion",
				Description: "How private/secluded can you be on 5–20 acres?",
				Guide:       "10 = very remote/private | 8 = well-separated | 6 = moderate privacy | 4 = some neighbors | 2 = dense/subdivision",
			},
			{
				ID:          "selfSufficiency",
				Name:        "Self-Sufficiency Potential",
				Description: "Ability to grow food, raise animals, collect rainwater, go off-grid",
				Guide:       "10 = excellent (long season, water, legal) | 8 = good | 6 = moderate | 4 = limited (climate/legal) | 2 = very difficult",
			},
			{
				ID:          "septicFeasibility",
				Name:        "Septic Feasibility",
				Description: "Soil perc test success rates, septic system viability",
				Guide:       "10 = excellent perc, any system | 8 = good soils | 6 = acceptable with engineered | 4 = challenging | 2 = very poor / requires alt system",
			},
			{
				ID:          "waterRights",
				Name:        "Water Rights & Well Permits",
				Description: "Clarity of water rights, ease of well drilling permits, aquifer health",
				Guide:       "10=clear rights, easy permits, strong aquifer | 7=straightforward process | 5=some restrictions | 3=complex/uncertain rights | 1=denied/depleted aquifer",
			},
		},
	},
	{
		ID:            "growthOutlook",
		Name:          "Growth & Outlook",
		Description:   "Population trends, economic vitality, housing appreciation, future trajectory",
		DefaultWeight: 5,
		Criteria: []Criterion{
			{
				ID:          "populationTrend",
				Name:        "Population Trend",
				Description: "Is the area growing, stable, or declining?",
				Guide:       "10 = top-10 fastest growing | 8 = strong growth (3%+/yr) | 6 = moderate growth (1–3%) | 4 = stable/flat | 2 = declining",
			},
			{
				ID:          "jobMarket",
				Name:        "Job Market & Economy",
				Description: "Local employment opportunities and economic diversity",
				Guide:       "10 = booming/diverse economy | 8 = strong job market | 6 = adequate | 4 = limited/single-industry | 2 = weak/declining",
			},
			{
				ID:          "housingAppreciation",
				Name:        "Housing Appreciation",
				Description: "Historical and projected property value trends",
				Guide:       "10 = rapid appreciation (8%+/yr) | 8 = strong (5–8%) | 6 = moderate (3–5%) | 4 = slow (1–3%) | 2 = flat/declining",
			},
			{
				ID:          "developmentPipeline",
				Name:        "Development & Infrastructure Investment",
				Description: "Planned roads, schools, commercial development, public investment",
				Guide:       "10 = major projects planned | 8 = significant investment | 6 = moderate development | 4 = minimal | 2 = stagnant/no plans",
			},
			{
				ID:          "remoteFriendly",
				Name:        "Remote Work Viability",
				Description: "Infrastructure and culture supporting remote/WFH lifestyle",
				Guide:       "10 = excellent (fiber + coworking + culture) | 8 = good | 6 = adequate | 4 = challenging | 2 = very difficult",
			},
		},
	},
}
