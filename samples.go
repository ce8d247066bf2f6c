package revet

// SampleReviews are built-in reviews covering the engine's detection
// categories, useful for demos and engine probes. Indexes 6-13 exercise the
// context-aware cases: promotion mentions vs pure advertisements, no-visit
// phrasing, and business-type mismatches.
var SampleReviews = []string{
	"This product is amazing! I love it so much and would highly recommend it to everyone. Best purchase ever!",
	"The quality is decent for the price. Shipping was fast and packaging was good. Would consider buying again.",
	"Terrible product! Don't waste your money. Click here for better deals at amazing prices!",
	"I love my new phone, but this place is too noisy for working.",
	"This fucking product is shit and I hate it so much!",
	"Great service! Contact me at john.doe@email.com or call 555-123-4567 for more info.",
	"Went to this restaurant last week and they had a great promotion - get up to 3 months free dessert if you order the special menu! The food was delicious and the staff was very friendly.",
	"Get up to 3 months free Spotify Premium if you subscribe now! Click here to visit our website!",
	"The coffee shop was amazing! They mentioned they were running a 20% discount for students, which was really nice. Great atmosphere and excellent service.",
	"Never been to this place but I heard it's terrible. People say the service is awful and the food is overpriced.",
	"Planning to visit this restaurant next week. Based on what I've heard from friends, it seems like a great place for dinner.",
	"Went to McDonald's yesterday and ordered their new wine selection. The Chardonnay was excellent and paired well with my Big Mac. They also have a great beer selection!",
	"Visited this bookstore looking for the latest novels, but ended up ordering a burger and fries. The pizza was also amazing and the coffee was perfect!",
	"Get up to 10 dollars if you join my referral program! Sign up now and start earning money today!",
}
