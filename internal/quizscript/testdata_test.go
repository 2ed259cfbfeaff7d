package quizscript

import "encoding/json"

func scriptJSON() json.RawMessage {
	return json.RawMessage(`{
		"topic": "সৌরজগৎ",
		"intro": {"visualDescription": "A planet shatters on screen", "text": "সূর্য একদিন নিভে যাবে!"},
		"hook": "৯৯% মানুষ এই কুইজে ফেল করে!",
		"questions": [
			{"question": "সবচেয়ে বড় গ্রহ কোনটি?", "options": ["মঙ্গল", "বৃহস্পতি", "শনি", "পৃথিবী"], "answer": "বৃহস্পতি", "fact": "বৃহস্পতিতে ১৩০০টি পৃথিবী ধরে।"},
			{"question": "লাল গ্রহ কোনটি?", "options": ["মঙ্গল", "শুক্র", "বুধ", "ইউরেনাস"], "answer": "মঙ্গল", "fact": "মরিচার কারণে লাল।"}
		],
		"twist": {"title": "অবাক করা তথ্য", "description": "শুক্রে একদিন এক বছরের চেয়ে লম্বা।"},
		"cta": "৫টিতে ৫ পেলে লাইক দিন!"
	}`)
}
