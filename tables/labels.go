// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tables

// The 27 lunar mansions, in sidereal order from 0 degrees Aries.
var nakshatras = []Label{
	{EN: "Ashwini", TA: "அஸ்வினி"},
	{EN: "Bharani", TA: "பரணி"},
	{EN: "Krittika", TA: "கார்த்திகை"},
	{EN: "Rohini", TA: "ரோகிணி"},
	{EN: "Mrigashira", TA: "மிருகசீரிடம்"},
	{EN: "Ardra", TA: "திருவாதிரை"},
	{EN: "Punarvasu", TA: "புனர்பூசம்"},
	{EN: "Pushya", TA: "பூசம்"},
	{EN: "Ashlesha", TA: "ஆயில்யம்"},
	{EN: "Magha", TA: "மகம்"},
	{EN: "Purva Phalguni", TA: "பூரம்"},
	{EN: "Uttara Phalguni", TA: "உத்திரம்"},
	{EN: "Hasta", TA: "ஹஸ்தம்"},
	{EN: "Chitra", TA: "சித்திரை"},
	{EN: "Swati", TA: "சுவாதி"},
	{EN: "Vishakha", TA: "விசாகம்"},
	{EN: "Anuradha", TA: "அனுஷம்"},
	{EN: "Jyeshtha", TA: "கேட்டை"},
	{EN: "Mula", TA: "மூலம்"},
	{EN: "Purva Ashadha", TA: "பூராடம்"},
	{EN: "Uttara Ashadha", TA: "உத்திராடம்"},
	{EN: "Shravana", TA: "திருவோணம்"},
	{EN: "Dhanishtha", TA: "அவிட்டம்"},
	{EN: "Shatabhisha", TA: "சதயம்"},
	{EN: "Purva Bhadrapada", TA: "பூரட்டாதி"},
	{EN: "Uttara Bhadrapada", TA: "உத்திரட்டாதி"},
	{EN: "Revati", TA: "ரேவதி"},
}

// The 30 lunar days. The first fifteen belong to the waxing fortnight
// ending with Purnima, the rest to the waning fortnight ending with
// Amavasya.
var tithis = []Label{
	{EN: "Pratipada", TA: "பிரதமை"},
	{EN: "Dwitiya", TA: "துவிதியை"},
	{EN: "Tritiya", TA: "திருதியை"},
	{EN: "Chaturthi", TA: "சதுர்த்தி"},
	{EN: "Panchami", TA: "பஞ்சமி"},
	{EN: "Shashthi", TA: "சஷ்டி"},
	{EN: "Saptami", TA: "சப்தமி"},
	{EN: "Ashtami", TA: "அஷ்டமி"},
	{EN: "Navami", TA: "நவமி"},
	{EN: "Dashami", TA: "தசமி"},
	{EN: "Ekadashi", TA: "ஏகாதசி"},
	{EN: "Dwadashi", TA: "துவாதசி"},
	{EN: "Trayodashi", TA: "திரயோதசி"},
	{EN: "Chaturdashi", TA: "சதுர்த்தசி"},
	{EN: "Purnima", TA: "பௌர்ணமி"},
	{EN: "Pratipada", TA: "பிரதமை"},
	{EN: "Dwitiya", TA: "துவிதியை"},
	{EN: "Tritiya", TA: "திருதியை"},
	{EN: "Chaturthi", TA: "சதுர்த்தி"},
	{EN: "Panchami", TA: "பஞ்சமி"},
	{EN: "Shashthi", TA: "சஷ்டி"},
	{EN: "Saptami", TA: "சப்தமி"},
	{EN: "Ashtami", TA: "அஷ்டமி"},
	{EN: "Navami", TA: "நவமி"},
	{EN: "Dashami", TA: "தசமி"},
	{EN: "Ekadashi", TA: "ஏகாதசி"},
	{EN: "Dwadashi", TA: "துவாதசி"},
	{EN: "Trayodashi", TA: "திரயோதசி"},
	{EN: "Chaturdashi", TA: "சதுர்த்தசி"},
	{EN: "Amavasya", TA: "அமாவாசை"},
}

var yogas = []Label{
	{EN: "Vishkambha", TA: "விஷ்கம்பா"},
	{EN: "Priti", TA: "ப்ரீதி"},
	{EN: "Ayushman", TA: "ஆயுஷ்மான்"},
	{EN: "Saubhagya", TA: "சௌபாக்ய"},
	{EN: "Shobhana", TA: "சோபன"},
	{EN: "Atiganda", TA: "அதிகண்ட"},
	{EN: "Sukarma", TA: "சுகர்மா"},
	{EN: "Dhriti", TA: "த்ருதி"},
	{EN: "Shoola", TA: "சூலா"},
	{EN: "Ganda", TA: "கண்ட"},
	{EN: "Vriddhi", TA: "வ்ருத்தி"},
	{EN: "Dhruva", TA: "த்ருவ"},
	{EN: "Vyaghata", TA: "வ்யாகாத"},
	{EN: "Harshana", TA: "ஹர்ஷண"},
	{EN: "Vajra", TA: "வஜ்ரா"},
	{EN: "Siddhi", TA: "சித்தி"},
	{EN: "Vyatipata", TA: "வ்யதீபாத"},
	{EN: "Variyana", TA: "வரீயான்"},
	{EN: "Parigha", TA: "பரிக"},
	{EN: "Shiva", TA: "சிவ"},
	{EN: "Siddha", TA: "சித்த"},
	{EN: "Sadhya", TA: "சாத்ய"},
	{EN: "Shubha", TA: "சுப"},
	{EN: "Shukla", TA: "சுக்ல"},
	{EN: "Brahma", TA: "ப்ரம்ம"},
	{EN: "Indra", TA: "இந்திர"},
	{EN: "Vaidhriti", TA: "வைத்ருதி"},
}

// The 11 karana names. The first seven repeat eight times over the lunar
// month, the last four are fixed and occupy the slots around Amavasya.
var karanas = []Label{
	{EN: "Bava", TA: "பவ"},
	{EN: "Balava", TA: "பாலவ"},
	{EN: "Kaulava", TA: "கௌலவ"},
	{EN: "Taitila", TA: "தைதில"},
	{EN: "Garaja", TA: "கரஜ"},
	{EN: "Vanija", TA: "வணிஜ"},
	{EN: "Vishti", TA: "விஷ்டி"},
	{EN: "Shakuni", TA: "சகுனி"},
	{EN: "Chatushpada", TA: "சதுஷ்பாத"},
	{EN: "Naga", TA: "நாக"},
	{EN: "Kimstughna", TA: "கிம்ஸ்துக்ன"},
}

// Tamil solar months. The month is the zodiac sign occupied by the sun,
// Chithirai corresponding to Mesha (Aries).
var masas = []Label{
	{EN: "Chithirai", TA: "சித்திரை"},
	{EN: "Vaikasi", TA: "வைகாசி"},
	{EN: "Aani", TA: "ஆனி"},
	{EN: "Aadi", TA: "ஆடி"},
	{EN: "Aavani", TA: "ஆவணி"},
	{EN: "Purattasi", TA: "புரட்டாசி"},
	{EN: "Aippasi", TA: "ஐப்பசி"},
	{EN: "Karthigai", TA: "கார்த்திகை"},
	{EN: "Margazhi", TA: "மார்கழி"},
	{EN: "Thai", TA: "தை"},
	{EN: "Maasi", TA: "மாசி"},
	{EN: "Panguni", TA: "பங்குனி"},
}

var rashis = []Label{
	{EN: "Aries", TA: "மேஷம்"},
	{EN: "Taurus", TA: "ரிஷபம்"},
	{EN: "Gemini", TA: "மிதுனம்"},
	{EN: "Cancer", TA: "கர்க்கடகம்"},
	{EN: "Leo", TA: "சிம்மம்"},
	{EN: "Virgo", TA: "கன்னி"},
	{EN: "Libra", TA: "துலாம்"},
	{EN: "Scorpio", TA: "விருச்சிகம்"},
	{EN: "Sagittarius", TA: "தனுசு"},
	{EN: "Capricorn", TA: "மகரம்"},
	{EN: "Aquarius", TA: "கும்பம்"},
	{EN: "Pisces", TA: "மீனம்"},
}

var ruthus = []Label{
	{EN: "Vasanta", TA: "வசந்தம்"},
	{EN: "Grishma", TA: "கிரீஷ்மம்"},
	{EN: "Varsha", TA: "வர்ஷா"},
	{EN: "Sharad", TA: "சரத்"},
	{EN: "Hemanta", TA: "ஹேமந்தம்"},
	{EN: "Shishira", TA: "சிசிர"},
}

var ayanas = []Label{
	{EN: "Uttarayana", TA: "உத்தராயணம்"},
	{EN: "Dakshinayana", TA: "தக்ஷிணாயனம்"},
}

var pakshas = []Label{
	{EN: "Shukla Paksha", TA: "சுக்ல பக்ஷம்"},
	{EN: "Krishna Paksha", TA: "கிருஷ்ண பக்ஷம்"},
}

// The 60 year cycle. No separate Tamil renderings are in use for these,
// the transliteration serves both languages.
var samvatsaraNames = []string{
	"Prabhava", "Vibhava", "Shukla", "Pramoda", "Prajapati",
	"Angirasa", "Shrimukha", "Bhava", "Yuva", "Dhatri",
	"Ishvara", "Bahudhanya", "Pramadhi", "Vikrama", "Vrisha",
	"Chitrabhanu", "Svabhanu", "Tarana", "Parthiva", "Vyaya",
	"Sarvajit", "Sarvadharin", "Virodhi", "Vikrita", "Khara",
	"Nandana", "Vijaya", "Jaya", "Manmatha", "Durmukha",
	"Hevilambi", "Vilambi", "Vikari", "Sharvari", "Plava",
	"Shubhakrit", "Shobhana", "Krodhi", "Vishvavasu", "Parabhava",
	"Plavanga", "Kilaka", "Saumya", "Sadharana", "Virodhikrit",
	"Paridhavin", "Pramadicha", "Ananda", "Rakshasa", "Nala",
	"Pingala", "Kalayukta", "Siddharthi", "Raudra", "Durmathi",
	"Dundubhi", "Rudhirodgari", "Raktakshi", "Krodhana", "Akshaya",
}

var samvatsaras = func() []Label {
	l := make([]Label, len(samvatsaraNames))
	for i, n := range samvatsaraNames {
		l[i] = Label{EN: n, TA: n}
	}
	return l
}()

// samvatsaraEpoch anchors the cycle: 1987 was Prabhava.
const samvatsaraEpoch = 1987

// Daytime eighth, counted from sunrise, occupied by rahukalam and
// yamagandam, Sunday first. Sunday's rahukalam is the last eighth before
// sunset, Monday's the second of the day, and so on.
var (
	rahuSegments = [7]int{7, 1, 6, 4, 5, 3, 2}
	yamaSegments = [7]int{4, 3, 2, 1, 7, 6, 5}
)
